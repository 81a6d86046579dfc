package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the static single page app. Requests that do not map
// to an existing file fall back to the index document so client side routing
// keeps working on deep links.
type FrontendHandler struct {
	staticDir string
	indexFile string
	files     http.Handler
}

func NewFrontendHandler(staticDir, indexFile string) *FrontendHandler {
	return &FrontendHandler{
		staticDir: staticDir,
		indexFile: indexFile,
		files:     http.FileServer(http.Dir(staticDir)),
	}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticDir, h.indexFile))
		return
	}
	h.files.ServeHTTP(w, r)
}
