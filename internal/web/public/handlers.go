package public

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/web/i18nhttp"
	"github.com/avantiadvisory/avantiag.com/internal/web/templates"
)

type handlers struct {
	store *store.Store
}

// language resolves the request language and persists an explicit choice.
func (h handlers) language(w http.ResponseWriter, r *http.Request) string {
	code, persist := i18nhttp.ResolveCode(r)
	if persist {
		i18nhttp.SetLanguageCookie(w, code)
	}
	return code
}

func (h handlers) translator(code string) templates.Translator {
	return func(key string) string {
		return h.store.Translate(code, key)
	}
}

// render writes the page body wrapped in the site chrome.
func (h handlers) render(w http.ResponseWriter, r *http.Request, code, title, desc string, t templates.Translator, body templ.Component) {
	meta := templates.PageMeta{
		Title:       title,
		Description: desc,
		Lang:        code,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		T:           t,
		Branding:    h.store.Pages(code).Home.Branding,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx := templ.WithChildren(r.Context(), body)
	if err := templates.Layout(meta).Render(ctx, w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}

func (h handlers) home(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	t := h.translator(code)
	pc := h.store.Pages(code)
	h.render(w, r, code, "Avanti Advisory Group", pc.Home.Hero.Description, t,
		templates.HomePage(pc, t))
}

func (h handlers) about(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	t := h.translator(code)
	pc := h.store.Pages(code)
	h.render(w, r, code, pc.About.Hero.Title, pc.About.Hero.Subtitle, t,
		templates.AboutPage(pc, t))
}

func (h handlers) resources(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	t := h.translator(code)
	pc := h.store.Pages(code)
	posts := h.store.Posts(code)
	h.render(w, r, code, pc.Resources.Hero.Title, pc.Resources.Hero.Subtitle, t,
		templates.ResourcesPage(pc, posts, t))
}

func (h handlers) resourceDetail(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/resources", http.StatusFound)
		return
	}
	post, ok := h.store.Post(code, id)
	if !ok {
		http.Redirect(w, r, "/resources", http.StatusFound)
		return
	}
	next := nextPost(h.store.Posts(code), id)
	t := h.translator(code)
	h.render(w, r, code, post.Title, post.Excerpt, t,
		templates.ResourceDetailPage(post, next, t))
}

// nextPost picks the entry after the current one in display order, wrapping
// to the first when the current post is last.
func nextPost(posts []content.BlogPost, id int64) *content.BlogPost {
	if len(posts) < 2 {
		return nil
	}
	for i, post := range posts {
		if post.ID == id {
			next := posts[(i+1)%len(posts)]
			return &next
		}
	}
	return nil
}

func (h handlers) contact(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	t := h.translator(code)
	pc := h.store.Pages(code)
	submitted := r.URL.Query().Get("sent") == "1"
	h.render(w, r, code, pc.Contact.Hero.Title, pc.Contact.Hero.Subtitle, t,
		templates.ContactPage(pc, content.ContactReasons(), submitted, t))
}

func (h handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	body := strings.TrimSpace(r.PostFormValue("message"))
	if name == "" || email == "" || body == "" {
		http.Redirect(w, r, "/contact", http.StatusFound)
		return
	}
	reason := strings.TrimSpace(r.PostFormValue("reason"))
	if reason == "" {
		reason = content.ReasonGeneral
	}
	msg := content.Message{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Reason:  reason,
		Message: body,
		Date:    content.DisplayDate(time.Now()),
	}
	if err := h.store.AddMessage(r.Context(), msg); err != nil {
		log.Printf("contact submission: %v", err)
		http.Error(w, "could not send message", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/contact?sent=1", http.StatusFound)
}

func (h handlers) payment(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	t := h.translator(code)
	h.render(w, r, code, t("payment.title"), t("payment.subtitle"), t,
		templates.PaymentPage(t))
}

func (h handlers) service(w http.ResponseWriter, r *http.Request) {
	code := h.language(w, r)
	key := r.PathValue("id")
	svc, ok := h.store.Service(code, key)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	t := h.translator(code)
	h.render(w, r, code, svc.Title, svc.Description, t,
		templates.ServicePage(svc, h.relatedServices(code, key), t))
}

// relatedServices returns up to three other catalog entries in display order.
func (h handlers) relatedServices(code, current string) []content.ServiceData {
	catalog := h.store.Services(code)
	var related []content.ServiceData
	for _, key := range content.ServiceOrder() {
		if key == current {
			continue
		}
		if svc, ok := catalog[key]; ok {
			related = append(related, svc)
		}
		if len(related) == 3 {
			break
		}
	}
	return related
}

// fallback redirects unknown paths to the home page.
func (h handlers) fallback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}
