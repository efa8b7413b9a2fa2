package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"drafter/internal/auth"
	"drafter/internal/project"

	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	Svc *project.Service
}

type createProjectReq struct {
	Title   string `json:"title"`
	DocType string `json:"doc_type"`
	Topic   string `json:"topic"`
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	var req createProjectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	// doc_type is stored as given; an unrecognized value just exports like pptx
	id, err := h.Svc.Create(r.Context(), u.ID, project.CreateInput{
		Title:   req.Title,
		DocType: req.DocType,
		Topic:   req.Topic,
	})
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Project created",
		"project_id": id,
	})
}

type setOutlineReq struct {
	Outline []string `json:"outline"`
}

func (h *ProjectHandler) SetOutline(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req setOutlineReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if err := h.Svc.SetOutline(r.Context(), u.ID, id, req.Outline); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Outline saved"})
}

type suggestOutlineReq struct {
	Topic   string `json:"topic"`
	DocType string `json:"doc_type"`
}

// SuggestOutline returns the canned outline for a doc type. No project is
// touched and no generation call is made.
func (h *ProjectHandler) SuggestOutline(w http.ResponseWriter, r *http.Request) {
	var req suggestOutlineReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suggested_outline": map[string]any{
			"sections": project.SuggestOutline(req.DocType),
		},
	})
}

// SuggestOutlineForProject returns the fixed per-project suggestion list.
// The project is loaded only to enforce ownership; its content is ignored.
func (h *ProjectHandler) SuggestOutlineForProject(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	if _, err := h.Svc.Get(r.Context(), u.ID, id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suggested_outline": map[string]any{
			"sections": project.SuggestOutlineForProject(),
		},
	})
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	projects, err := h.Svc.List(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, p)
}

func projectID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id64, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id64, true
}
