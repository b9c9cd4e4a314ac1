package api

import (
	"encoding/json"
	"io"
	"net/http"
)

// handleDocument serves the assembled document as markdown, title first.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.builder.Build()
	if err != nil {
		s.log.Error("build failed", "error", err)
		jsonError(w, "build failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	io.WriteString(w, doc.Joined())
}

// handleDocumentHTML serves the assembled document rendered into the page
// template.
func (s *Server) handleDocumentHTML(w http.ResponseWriter, r *http.Request) {
	doc, err := s.builder.Build()
	if err != nil {
		s.log.Error("build failed", "error", err)
		jsonError(w, "build failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, doc.HTML)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
