// Package content defines the bilingual site content model: editable page
// trees, the service catalog, blog posts, media and contact messages.
package content

import (
	"encoding/json"
	"fmt"
	"time"
)

// Contact form reasons, stored verbatim on messages.
const (
	ReasonGeneral         = "Consulta General"
	ReasonTaxesCorporate  = "Impuestos Empresas"
	ReasonTaxesIndividual = "Impuestos Personas"
	ReasonAccounting      = "Contabilidad y Bookkeeping"
	ReasonBranding        = "Comunicaciones y Branding"
)

// ContactReasons returns the selectable reasons in display order.
func ContactReasons() []string {
	return []string{
		ReasonGeneral,
		ReasonTaxesCorporate,
		ReasonTaxesIndividual,
		ReasonAccounting,
		ReasonBranding,
	}
}

// PageSlugs are the editable pages, in navigation order.
func PageSlugs() []string {
	return []string{"home", "about", "resources", "contact"}
}

type HomeHero struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}

type HomeCollage struct {
	Image1 string `json:"image1"`
	Image2 string `json:"image2"`
	Image3 string `json:"image3"`
	Image4 string `json:"image4"`
}

type HomeCards struct {
	Image1 string `json:"image1"`
	Image2 string `json:"image2"`
	Image3 string `json:"image3"`
}

type HomePrecision struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	Image       string `json:"image"`
}

type HomeFinalCTA struct {
	Title           string `json:"title"`
	TitleItalic     string `json:"titleItalic"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	Badge           string `json:"badge"`
	ButtonPrimary   string `json:"buttonPrimary"`
	ButtonSecondary string `json:"buttonSecondary"`
}

type HomeBranding struct {
	LogoLight             string `json:"logoLight"`
	LogoDark              string `json:"logoDark"`
	LogoFallback          string `json:"logoFallback"`
	TransparentBackground string `json:"transparentBackground"`
	SolidBackground       string `json:"solidBackground"`
}

type HomePage struct {
	Hero      HomeHero      `json:"hero"`
	Collage   HomeCollage   `json:"collage"`
	Cards     HomeCards     `json:"cards"`
	Precision HomePrecision `json:"precision"`
	FinalCTA  HomeFinalCTA  `json:"finalCta"`
	Branding  HomeBranding  `json:"branding"`
}

type PageHero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

type AboutIntro struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AboutCards struct {
	Title1 string `json:"title1"`
	Text1  string `json:"text1"`
	Title2 string `json:"title2"`
	Text2  string `json:"text2"`
}

type AboutPage struct {
	Hero  PageHero   `json:"hero"`
	Intro AboutIntro `json:"intro"`
	Cards AboutCards `json:"cards"`
}

type ResourcesPage struct {
	Hero PageHero `json:"hero"`
}

type ContactInfo struct {
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Office string `json:"office"`
}

type ContactPage struct {
	Hero PageHero    `json:"hero"`
	Info ContactInfo `json:"info"`
}

// PageContent is the full editable tree for one language. Every field is
// always populated after assembly, either from storage or from defaults.
type PageContent struct {
	Home      HomePage      `json:"home"`
	About     AboutPage     `json:"about"`
	Resources ResourcesPage `json:"resources"`
	Contact   ContactPage   `json:"contact"`
}

// SubSection is a titled block of prose under a service.
type SubSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ServiceData describes one entry of the service catalog.
type ServiceData struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Bullets     []string     `json:"bullets"`
	Image       string       `json:"image,omitempty"`
	SubSections []SubSection `json:"subSections,omitempty"`
}

// BlogPost is a rendered article. Date is preformatted for display.
type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// MediaItem is one entry of the media library.
type MediaItem struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Message is a contact form submission as shown in the inbox.
type Message struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

// DisplayDate formats a timestamp the way articles and inbox entries show it.
func DisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Section returns the named section of a page as a generic field map.
func (pc PageContent) Section(page, section string) (map[string]any, bool) {
	tree, err := pc.tree()
	if err != nil {
		return nil, false
	}
	sections, ok := tree[page]
	if !ok {
		return nil, false
	}
	fields, ok := sections[section]
	return fields, ok
}

// WithSection returns a copy of pc with the named section replaced by fields.
// Unknown page or section names are an error.
func (pc PageContent) WithSection(page, section string, fields map[string]any) (PageContent, error) {
	tree, err := pc.tree()
	if err != nil {
		return PageContent{}, err
	}
	sections, ok := tree[page]
	if !ok {
		return PageContent{}, fmt.Errorf("unknown page %q", page)
	}
	if _, ok := sections[section]; !ok {
		return PageContent{}, fmt.Errorf("unknown section %q on page %q", section, page)
	}
	sections[section] = fields

	raw, err := json.Marshal(tree)
	if err != nil {
		return PageContent{}, fmt.Errorf("encode page tree: %w", err)
	}
	var out PageContent
	if err := json.Unmarshal(raw, &out); err != nil {
		return PageContent{}, fmt.Errorf("decode page tree: %w", err)
	}
	return out, nil
}

// MergeSection overlays the supplied fields on top of base, key by key.
// Neither input map is modified.
func MergeSection(base, fields map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(fields))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return merged
}

func (pc PageContent) tree() (map[string]map[string]map[string]any, error) {
	raw, err := json.Marshal(pc)
	if err != nil {
		return nil, fmt.Errorf("encode page tree: %w", err)
	}
	var tree map[string]map[string]map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode page tree: %w", err)
	}
	return tree, nil
}
