package templates

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/a-h/templ"
	"github.com/avantiadvisory/avantiag.com/internal/content"
)

// LoginPage renders the standalone admin login screen.
func LoginPage(errMsg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		fmt.Fprintf(w, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(w, `<title>Admin | Avanti Advisory Group</title>`)
		fmt.Fprintf(w, `<link rel="stylesheet" href="/static/site.css"></head><body class="admin-login">`)
		fmt.Fprintf(w, `<main><h1>Panel de Administración</h1>`)
		if errMsg != "" {
			fmt.Fprintf(w, `<p class="error">%s</p>`, esc(errMsg))
		}
		fmt.Fprintf(w, `<form method="post" action="/admin/login">`)
		fmt.Fprintf(w, `<label>Email<input name="email" type="email" required autofocus></label>`)
		fmt.Fprintf(w, `<label>Contraseña<input name="password" type="password" required></label>`)
		fmt.Fprintf(w, `<button type="submit">Entrar</button></form></main></body></html>`)
		return nil
	})
}

// AdminMeta carries the shared admin shell inputs.
type AdminMeta struct {
	Title     string
	Active    string
	Email     string
	Unread    int
	Saving    bool
	LastSaved time.Time
}

// AdminLayout wraps an admin page body with the panel chrome.
func AdminLayout(meta AdminMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		fmt.Fprintf(w, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(w, `<title>%s | Admin</title>`, esc(meta.Title))
		fmt.Fprintf(w, `<link rel="stylesheet" href="/static/site.css"></head><body class="admin">`)

		fmt.Fprintf(w, `<aside class="admin-nav"><p class="brand">Avanti CMS</p><nav>`)
		links := []struct{ href, id, label string }{
			{"/admin", "dashboard", "Dashboard"},
			{"/admin/pages", "pages", "Páginas"},
			{"/admin/blog", "blog", "Blog"},
			{"/admin/ai", "ai", "Asistente IA"},
			{"/admin/media", "media", "Medios"},
			{"/admin/inbox", "inbox", "Mensajes"},
		}
		for _, link := range links {
			label := link.label
			if link.id == "inbox" && meta.Unread > 0 {
				label = fmt.Sprintf("%s (%d)", label, meta.Unread)
			}
			fmt.Fprintf(w, `<a href="%s"%s>%s</a>`, esc(link.href), activeAttr(meta.Active == link.id), esc(label))
		}
		fmt.Fprintf(w, `</nav><form method="post" action="/admin/logout"><button type="submit">Salir</button></form>`)
		fmt.Fprintf(w, `<p class="who">%s</p></aside>`, esc(meta.Email))

		fmt.Fprintf(w, `<main class="admin-main"><header><h1>%s</h1>`, esc(meta.Title))
		switch {
		case meta.Saving:
			fmt.Fprintf(w, `<span class="save-state">Guardando…</span>`)
		case !meta.LastSaved.IsZero():
			fmt.Fprintf(w, `<span class="save-state">Guardado %s</span>`, esc(meta.LastSaved.Format("15:04:05")))
		}
		fmt.Fprintf(w, `</header>`)

		children := templ.GetChildren(ctx)
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, `</main></body></html>`)
		return nil
	})
}

// DashboardPage summarizes the panel state.
func DashboardPage(posts, media, messages, unread int, refreshErr string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if refreshErr != "" {
			fmt.Fprintf(w, `<p class="error">Algunos datos no se pudieron recargar: %s</p>`, esc(refreshErr))
		}
		fmt.Fprintf(w, `<section class="stats">`)
		stats := []struct {
			label string
			value int
			href  string
		}{
			{"Artículos", posts, "/admin/blog"},
			{"Medios", media, "/admin/media"},
			{"Mensajes", messages, "/admin/inbox"},
			{"Sin leer", unread, "/admin/inbox"},
		}
		for _, stat := range stats {
			fmt.Fprintf(w, `<a class="stat" href="%s"><strong>%d</strong><span>%s</span></a>`,
				esc(stat.href), stat.value, esc(stat.label))
		}
		fmt.Fprintf(w, `</section>`)
		fmt.Fprintf(w, `<section class="quick-links"><a href="/" target="_blank">Ver sitio</a>`)
		fmt.Fprintf(w, `<a href="/admin/ai">Generar artículo con IA</a></section>`)
		return nil
	})
}

// PagesAdminPage renders the section editor for one page and language.
func PagesAdminPage(lang, page string, sections map[string]map[string]any, order []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<nav class="sub-nav">`)
		for _, slug := range content.PageSlugs() {
			fmt.Fprintf(w, `<a href="/admin/pages?page=%s&lang=%s"%s>%s</a>`,
				esc(slug), esc(lang), activeAttr(slug == page), esc(slug))
		}
		for _, code := range []string{"es", "en"} {
			fmt.Fprintf(w, `<a class="lang" href="/admin/pages?page=%s&lang=%s"%s>%s</a>`,
				esc(page), esc(code), activeAttr(code == lang), esc(code))
		}
		fmt.Fprintf(w, `</nav>`)

		for _, name := range order {
			fields, ok := sections[name]
			if !ok {
				continue
			}
			fmt.Fprintf(w, `<form class="section-editor" method="post" action="/admin/pages">`)
			fmt.Fprintf(w, `<h2>%s</h2>`, esc(name))
			fmt.Fprintf(w, `<input type="hidden" name="lang" value="%s">`, esc(lang))
			fmt.Fprintf(w, `<input type="hidden" name="page" value="%s">`, esc(page))
			fmt.Fprintf(w, `<input type="hidden" name="section" value="%s">`, esc(name))
			for _, key := range fieldOrder(fields) {
				value, ok := fields[key].(string)
				if !ok {
					continue
				}
				if len(value) > 120 {
					fmt.Fprintf(w, `<label>%s<textarea name="field.%s">%s</textarea></label>`,
						esc(key), esc(key), esc(value))
				} else {
					fmt.Fprintf(w, `<label>%s<input name="field.%s" value="%s"></label>`,
						esc(key), esc(key), esc(value))
				}
			}
			fmt.Fprintf(w, `<button type="submit">Guardar sección</button></form>`)
		}
		return nil
	})
}

// BlogAdminPage lists articles with the create/edit form. When editing is
// non-nil the form is pre-filled for that post.
func BlogAdminPage(lang string, posts []content.BlogPost, editing *content.BlogPost) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<nav class="sub-nav">`)
		for _, code := range []string{"es", "en"} {
			fmt.Fprintf(w, `<a href="/admin/blog?lang=%s"%s>%s</a>`, esc(code), activeAttr(code == lang), esc(code))
		}
		fmt.Fprintf(w, `</nav>`)

		var post content.BlogPost
		action := "/admin/blog"
		heading := "Nuevo artículo"
		if editing != nil {
			post = *editing
			action = fmt.Sprintf("/admin/blog/%d", post.ID)
			heading = "Editar artículo"
		}
		fmt.Fprintf(w, `<form class="post-editor" method="post" action="%s"><h2>%s</h2>`, esc(action), esc(heading))
		fmt.Fprintf(w, `<input type="hidden" name="lang" value="%s">`, esc(lang))
		fmt.Fprintf(w, `<label>Título<input name="title" value="%s" required></label>`, esc(post.Title))
		fmt.Fprintf(w, `<label>Categoría<input name="category" value="%s"></label>`, esc(post.Category))
		fmt.Fprintf(w, `<label>Autor<input name="author" value="%s"></label>`, esc(post.Author))
		fmt.Fprintf(w, `<label>Imagen (URL)<input name="image" value="%s"></label>`, esc(post.Image))
		fmt.Fprintf(w, `<label>Extracto<textarea name="excerpt">%s</textarea></label>`, esc(post.Excerpt))
		fmt.Fprintf(w, `<label>Contenido (HTML)<textarea name="content" rows="14">%s</textarea></label>`, esc(post.Content))
		fmt.Fprintf(w, `<button type="submit">Guardar</button>`)
		if editing != nil {
			fmt.Fprintf(w, ` <a href="/admin/blog?lang=%s">Cancelar</a>`, esc(lang))
		}
		fmt.Fprintf(w, `</form>`)

		fmt.Fprintf(w, `<table class="post-list"><thead><tr><th>Título</th><th>Categoría</th><th>Fecha</th><th></th></tr></thead><tbody>`)
		for _, item := range posts {
			fmt.Fprintf(w, `<tr><td><a href="/admin/blog?lang=%s&edit=%d">%s</a></td><td>%s</td><td>%s</td>`,
				esc(lang), item.ID, esc(item.Title), esc(item.Category), esc(item.Date))
			fmt.Fprintf(w, `<td><form method="post" action="/admin/blog/%d/delete"><input type="hidden" name="lang" value="%s"><button type="submit">Eliminar</button></form></td></tr>`,
				item.ID, esc(lang))
		}
		fmt.Fprintf(w, `</tbody></table>`)
		return nil
	})
}

// AIPage renders the article generator. When a draft was produced it is
// shown in a publish form; errMsg reports a failed generation.
func AIPage(available bool, topic, keywords, tone, errMsg string, draft *DraftView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if !available {
			fmt.Fprintf(w, `<p class="error">El asistente de IA no está configurado. Define la clave de API de Gemini para activarlo.</p>`)
			return nil
		}
		if errMsg != "" {
			fmt.Fprintf(w, `<p class="error">%s</p>`, esc(errMsg))
		}
		fmt.Fprintf(w, `<form class="ai-form" method="post" action="/admin/ai"><h2>Generar artículo</h2>`)
		fmt.Fprintf(w, `<label>Tema<input name="topic" value="%s" required></label>`, esc(topic))
		fmt.Fprintf(w, `<label>Palabras clave<input name="keywords" value="%s"></label>`, esc(keywords))
		fmt.Fprintf(w, `<label>Tono<input name="tone" value="%s"></label>`, esc(tone))
		fmt.Fprintf(w, `<button type="submit">Generar</button></form>`)

		if draft != nil {
			fmt.Fprintf(w, `<form class="ai-draft" method="post" action="/admin/ai/publish"><h2>Borrador</h2>`)
			fmt.Fprintf(w, `<label>Título<input name="title" value="%s"></label>`, esc(draft.Title))
			fmt.Fprintf(w, `<label>Categoría<input name="category" value="%s"></label>`, esc(draft.Category))
			fmt.Fprintf(w, `<label>Extracto<textarea name="excerpt">%s</textarea></label>`, esc(draft.Excerpt))
			fmt.Fprintf(w, `<label>Contenido<textarea name="content" rows="14">%s</textarea></label>`, esc(draft.Content))
			fmt.Fprintf(w, `<input type="hidden" name="author" value="%s">`, esc(draft.Author))
			fmt.Fprintf(w, `<input type="hidden" name="image" value="%s">`, esc(draft.Image))
			fmt.Fprintf(w, `<label>Idioma<select name="lang"><option value="es">es</option><option value="en">en</option></select></label>`)
			fmt.Fprintf(w, `<button type="submit">Publicar</button></form>`)
		}
		return nil
	})
}

// DraftView carries a generated article into the publish form.
type DraftView struct {
	Title    string
	Category string
	Excerpt  string
	Content  string
	Author   string
	Image    string
}

// MediaAdminPage renders the upload form and the media library grid.
func MediaAdminPage(items []content.MediaItem, errMsg string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if errMsg != "" {
			fmt.Fprintf(w, `<p class="error">%s</p>`, esc(errMsg))
		}
		fmt.Fprintf(w, `<form class="upload" method="post" action="/admin/media" enctype="multipart/form-data">`)
		fmt.Fprintf(w, `<label>Subir imagen<input type="file" name="file" accept="image/*" required></label>`)
		fmt.Fprintf(w, `<button type="submit">Subir</button></form>`)

		fmt.Fprintf(w, `<section class="media-grid">`)
		for _, item := range items {
			fmt.Fprintf(w, `<figure><img src="%s" alt="%s"><figcaption>%s<br>%s</figcaption>`,
				esc(item.URL), esc(item.Name), esc(item.Name), esc(item.Date))
			fmt.Fprintf(w, `<form method="post" action="/admin/media/%d/delete"><button type="submit">Eliminar</button></form></figure>`,
				item.ID)
		}
		fmt.Fprintf(w, `</section>`)
		return nil
	})
}

// InboxAdminPage lists contact messages, newest first.
func InboxAdminPage(messages []content.Message) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(messages) == 0 {
			fmt.Fprintf(w, `<p class="empty">No hay mensajes.</p>`)
			return nil
		}
		for _, msg := range messages {
			cls := "message"
			if !msg.Read {
				cls = "message unread"
			}
			fmt.Fprintf(w, `<article class="%s"><header><strong>%s</strong> &lt;%s&gt;`, cls, esc(msg.Name), esc(msg.Email))
			if msg.Phone != "" {
				fmt.Fprintf(w, ` · %s`, esc(msg.Phone))
			}
			fmt.Fprintf(w, `<span class="meta">%s · %s</span></header>`, esc(msg.Reason), esc(msg.Date))
			fmt.Fprintf(w, `<p>%s</p><footer>`, esc(msg.Message))
			if !msg.Read {
				fmt.Fprintf(w, `<form method="post" action="/admin/inbox/%d/read"><button type="submit">Marcar leído</button></form>`, msg.ID)
			}
			fmt.Fprintf(w, `<form method="post" action="/admin/inbox/%d/delete"><button type="submit">Eliminar</button></form></footer></article>`, msg.ID)
		}
		return nil
	})
}

// fieldOrder returns string field keys in a stable order, hero title and
// subtitle first so the editor reads naturally.
func fieldOrder(fields map[string]any) []string {
	preferred := []string{"title", "subtitle", "description", "content", "image"}
	seen := make(map[string]bool, len(fields))
	var keys []string
	for _, key := range preferred {
		if _, ok := fields[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range fields {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
