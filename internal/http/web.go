package http

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Flash    string
	Username string
}

func (h *Handler) renderPage(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		h.Log.Error("render page", "template", name, "err", err)
	}
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// Already logged in: straight to the app.
	if h.Sessions.Exists(r.Context(), sessionUserIDKey) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderPage(w, "login.html", pageData{
		Flash: h.Sessions.PopString(r.Context(), sessionFlashKey),
	})
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "index.html", pageData{
		Flash:    h.Sessions.PopString(r.Context(), sessionFlashKey),
		Username: h.Sessions.GetString(r.Context(), sessionUsernameKey),
	})
}
