package handler

import (
	"net/http"
	"path/filepath"
)

// PageHandler serves the fixed application pages from the static directory.
// The pages carry no server-rendered state; the client script drives the
// auth API and renders results.
type PageHandler struct {
	staticDir string
}

// NewPageHandler creates a new page handler
func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

// Index serves the login/register entry page
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "index.html")
}

// Dashboard serves the protected dashboard page
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "dashboard.html")
}

// Readme serves the protected readme page
func (h *PageHandler) Readme(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "readme.html")
}

func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request, name string) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, name))
}
