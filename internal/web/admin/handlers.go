package admin

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/crypto/bcrypt"

	"github.com/avantiadvisory/avantiag.com/internal/ai"
	"github.com/avantiadvisory/avantiag.com/internal/content"
	"github.com/avantiadvisory/avantiag.com/internal/content/store"
	"github.com/avantiadvisory/avantiag.com/internal/storage"
	"github.com/avantiadvisory/avantiag.com/internal/web/session"
	"github.com/avantiadvisory/avantiag.com/internal/web/templates"
)

// maxUploadBytes caps media uploads.
const maxUploadBytes = 10 << 20

type handlers struct {
	store     *store.Store
	db        storage.Store
	sessions  *session.Manager
	generator *ai.Generator
}

type claimsKey struct{}

// requireAuth redirects unauthenticated requests to the login screen and
// stores the session claims on the request context.
func (h handlers) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.sessions.Verify(r)
		if err != nil {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFrom(r *http.Request) session.Claims {
	claims, _ := r.Context().Value(claimsKey{}).(session.Claims)
	return claims
}

func (h handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.Verify(r); err == nil {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	renderComponent(w, r, templates.LoginPage(""))
}

func (h handlers) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	admin, err := h.db.GetAdminByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("admin lookup: %v", err)
		}
		h.rejectLogin(w, r)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		h.rejectLogin(w, r)
		return
	}
	if err := h.sessions.Issue(w, admin.ID, admin.Email); err != nil {
		log.Printf("issue session: %v", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if err := h.db.TouchAdminLogin(r.Context(), admin.ID, time.Now()); err != nil {
		log.Printf("touch admin login: %v", err)
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h handlers) rejectLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	if err := templates.LoginPage("Credenciales inválidas").Render(r.Context(), w); err != nil {
		log.Printf("render login: %v", err)
	}
}

func (h handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

func (h handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	var refreshErr string
	if err := h.store.Refresh(r.Context()); err != nil {
		refreshErr = err.Error()
	}
	posts := len(h.store.Posts("es")) + len(h.store.Posts("en"))
	body := templates.DashboardPage(posts, len(h.store.Media()), len(h.store.Messages()), h.store.UnreadCount(), refreshErr)
	h.render(w, r, "Dashboard", "dashboard", body)
}

// sectionOrder lists the editable sections of each page in editor order.
func sectionOrder(page string) []string {
	switch page {
	case "home":
		return []string{"hero", "collage", "cards", "precision", "finalCta", "branding"}
	case "about":
		return []string{"hero", "intro", "cards"}
	case "resources":
		return []string{"hero"}
	case "contact":
		return []string{"hero", "info"}
	}
	return nil
}

func (h handlers) pagesForm(w http.ResponseWriter, r *http.Request) {
	lang := normalizeLang(r.URL.Query().Get("lang"))
	page := r.URL.Query().Get("page")
	if sectionOrder(page) == nil {
		page = "home"
	}
	pc := h.store.Pages(lang)
	order := sectionOrder(page)
	sections := make(map[string]map[string]any, len(order))
	for _, name := range order {
		if fields, ok := pc.Section(page, name); ok {
			sections[name] = fields
		}
	}
	h.render(w, r, "Páginas", "pages", templates.PagesAdminPage(lang, page, sections, order))
}

func (h handlers) updatePage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	lang := normalizeLang(r.PostFormValue("lang"))
	page := r.PostFormValue("page")
	section := r.PostFormValue("section")

	fields := make(map[string]any)
	for key, values := range r.PostForm {
		name, ok := strings.CutPrefix(key, "field.")
		if !ok || len(values) == 0 {
			continue
		}
		fields[name] = values[0]
	}
	if err := h.store.UpdatePageContent(r.Context(), lang, page, section, fields); err != nil {
		log.Printf("update %s/%s section %s: %v", lang, page, section, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/admin/pages?page="+page+"&lang="+lang, http.StatusFound)
}

func (h handlers) blog(w http.ResponseWriter, r *http.Request) {
	lang := normalizeLang(r.URL.Query().Get("lang"))
	posts := h.store.Posts(lang)

	var editing *content.BlogPost
	if raw := r.URL.Query().Get("edit"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			if post, ok := h.store.Post(lang, id); ok {
				editing = &post
			}
		}
	}
	h.render(w, r, "Blog", "blog", templates.BlogAdminPage(lang, posts, editing))
}

func postFromForm(r *http.Request) content.BlogPost {
	return content.BlogPost{
		Title:    strings.TrimSpace(r.PostFormValue("title")),
		Category: strings.TrimSpace(r.PostFormValue("category")),
		Author:   strings.TrimSpace(r.PostFormValue("author")),
		Image:    strings.TrimSpace(r.PostFormValue("image")),
		Excerpt:  strings.TrimSpace(r.PostFormValue("excerpt")),
		Content:  r.PostFormValue("content"),
	}
}

func (h handlers) createPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	lang := normalizeLang(r.PostFormValue("lang"))
	if _, err := h.store.AddPost(r.Context(), lang, postFromForm(r)); err != nil {
		log.Printf("create post: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/admin/blog?lang="+lang, http.StatusFound)
}

func (h handlers) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	lang := normalizeLang(r.PostFormValue("lang"))
	post := postFromForm(r)
	post.ID = id
	if err := h.store.UpdatePost(r.Context(), lang, post); err != nil {
		log.Printf("update post %d: %v", id, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/admin/blog?lang="+lang, http.StatusFound)
}

func (h handlers) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := h.store.DeletePost(r.Context(), id); err != nil {
		log.Printf("delete post %d: %v", id, err)
	}
	lang := normalizeLang(r.PostFormValue("lang"))
	http.Redirect(w, r, "/admin/blog?lang="+lang, http.StatusFound)
}

func (h handlers) aiAvailable() bool {
	return h.generator != nil && h.generator.Available()
}

func (h handlers) aiForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Asistente IA", "ai", templates.AIPage(h.aiAvailable(), "", "", "", "", nil))
}

func (h handlers) aiGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	topic := strings.TrimSpace(r.PostFormValue("topic"))
	keywords := strings.TrimSpace(r.PostFormValue("keywords"))
	tone := strings.TrimSpace(r.PostFormValue("tone"))

	if !h.aiAvailable() {
		h.render(w, r, "Asistente IA", "ai", templates.AIPage(false, topic, keywords, tone, "", nil))
		return
	}
	draft, err := h.generator.Generate(r.Context(), ai.Request{Topic: topic, Keywords: keywords, Tone: tone})
	if err != nil {
		log.Printf("generate article: %v", err)
		h.render(w, r, "Asistente IA", "ai",
			templates.AIPage(true, topic, keywords, tone, "No se pudo generar el artículo. Intente de nuevo.", nil))
		return
	}
	view := &templates.DraftView{
		Title:    draft.Title,
		Category: draft.Category,
		Excerpt:  draft.Excerpt,
		Content:  draft.Content,
		Author:   draft.Author,
		Image:    draft.Image,
	}
	h.render(w, r, "Asistente IA", "ai", templates.AIPage(true, topic, keywords, tone, "", view))
}

func (h handlers) aiPublish(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	lang := normalizeLang(r.PostFormValue("lang"))
	if _, err := h.store.AddPost(r.Context(), lang, postFromForm(r)); err != nil {
		log.Printf("publish draft: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/admin/blog?lang="+lang, http.StatusFound)
}

func (h handlers) media(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Medios", "media", templates.MediaAdminPage(h.store.Media(), r.URL.Query().Get("err")))
}

func (h handlers) uploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "bad upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "read upload", http.StatusBadRequest)
		return
	}
	if _, err := h.store.UploadImage(r.Context(), header.Filename, data); err != nil {
		log.Printf("upload %s: %v", header.Filename, err)
		http.Redirect(w, r, "/admin/media?err=No+se+pudo+subir+la+imagen", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/admin/media", http.StatusFound)
}

func (h handlers) deleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := h.store.DeleteMedia(r.Context(), id); err != nil {
		log.Printf("delete media %d: %v", id, err)
	}
	http.Redirect(w, r, "/admin/media", http.StatusFound)
}

func (h handlers) inbox(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Refresh(r.Context()); err != nil {
		log.Printf("refresh inbox: %v", err)
	}
	h.render(w, r, "Mensajes", "inbox", templates.InboxAdminPage(h.store.Messages()))
}

func (h handlers) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := h.store.MarkAsRead(r.Context(), id); err != nil {
		log.Printf("mark message %d read: %v", id, err)
	}
	http.Redirect(w, r, "/admin/inbox", http.StatusFound)
}

func (h handlers) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := h.store.DeleteMessage(r.Context(), id); err != nil {
		log.Printf("delete message %d: %v", id, err)
	}
	http.Redirect(w, r, "/admin/inbox", http.StatusFound)
}

// render writes the page body inside the admin shell.
func (h handlers) render(w http.ResponseWriter, r *http.Request, title, active string, body templ.Component) {
	meta := templates.AdminMeta{
		Title:     title,
		Active:    active,
		Email:     claimsFrom(r).Email,
		Unread:    h.store.UnreadCount(),
		Saving:    h.store.IsSaving(),
		LastSaved: h.store.LastSaved(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx := templ.WithChildren(r.Context(), body)
	if err := templates.AdminLayout(meta).Render(ctx, w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}

func normalizeLang(code string) string {
	if code == "en" {
		return "en"
	}
	return "es"
}
