// Package templates renders the site and admin panel markup as templ
// components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/web/i18nhttp"
)

// Translator resolves fixed interface strings for the active language.
type Translator func(key string) string

// PageMeta carries the chrome inputs shared by every public page.
type PageMeta struct {
	Title       string
	Description string
	Lang        string
	Path        string
	Query       string
	T           Translator
	Branding    content.HomeBranding
}

func esc(value string) string {
	return templ.EscapeString(value)
}

// Layout wraps a page body with the site chrome: header navigation,
// language switch, and footer.
func Layout(meta PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := meta.T
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`, esc(meta.Lang))
		fmt.Fprintf(w, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(w, `<title>%s</title>`, esc(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(w, `<meta name="description" content="%s">`, esc(meta.Description))
		}
		fmt.Fprintf(w, `<link rel="stylesheet" href="/static/site.css"></head><body>`)

		fmt.Fprintf(w, `<header class="site-header"><a class="brand" href="/">`)
		if meta.Branding.LogoDark != "" {
			fmt.Fprintf(w, `<img src="%s" alt="Avanti Advisory Group">`, esc(meta.Branding.LogoDark))
		} else {
			fmt.Fprintf(w, `Avanti Advisory Group`)
		}
		fmt.Fprintf(w, `</a><nav class="main-nav">`)
		navLinks := []struct{ href, key string }{
			{"/services/" + content.ServiceOrder()[0], "nav.services"},
			{"/resources", "nav.resources"},
			{"/about", "nav.about"},
			{"/payment", "nav.payment"},
			{"/contact", "nav.contact"},
		}
		for _, link := range navLinks {
			fmt.Fprintf(w, `<a href="%s">%s</a>`, esc(link.href), esc(t(link.key)))
		}
		fmt.Fprintf(w, `</nav><div class="lang-switch">`)
		fmt.Fprintf(w, `<a href="%s"%s>ES</a> <a href="%s"%s>EN</a>`,
			esc(langURL(meta.Path, meta.Query, "es")), activeAttr(meta.Lang == "es"),
			esc(langURL(meta.Path, meta.Query, "en")), activeAttr(meta.Lang == "en"))
		fmt.Fprintf(w, `</div></header><main>`)

		children := templ.GetChildren(ctx)
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}

		fmt.Fprintf(w, `</main><footer class="site-footer"><p>%s</p>`, esc(t("footer.tagline")))
		fmt.Fprintf(w, `<p>&copy; Avanti Advisory Group. %s</p></footer>`, esc(t("footer.rights")))
		fmt.Fprintf(w, `</body></html>`)
		return nil
	})
}

func activeAttr(active bool) string {
	if active {
		return ` class="active"`
	}
	return ""
}

func langURL(path, query, code string) string {
	if path == "" {
		path = "/"
	}
	return i18nhttp.LanguageURL(path, query, code)
}
