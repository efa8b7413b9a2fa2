package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"drafter/internal/auth"
	"drafter/internal/export"
	"drafter/internal/project"
)

const (
	docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// ExportHandler renders the project's title and content into a file under
// Dir and serves it as a download.
type ExportHandler struct {
	Svc *project.Service
	Dir string
}

func (h *ExportHandler) Docx(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "docx", docxMIME, export.Docx)
}

func (h *ExportHandler) Pptx(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "pptx", pptxMIME, export.Pptx)
}

func (h *ExportHandler) export(
	w http.ResponseWriter,
	r *http.Request,
	ext, mime string,
	render func(title string, sections []export.Section) ([]byte, error),
) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	p, err := h.Svc.Get(r.Context(), u.ID, id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data, err := render(p.Title, export.Order(p.Outline, p.Content))
	if err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("project_%d.%s", p.ID, ext)
	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	path := filepath.Join(h.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
