package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"drafter/internal/auth"
	"drafter/internal/content"

	"gorm.io/gorm"
)

type ContentHandler struct {
	Svc *content.Service
}

func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	generated, err := h.Svc.Generate(r.Context(), u.ID, id)
	if err != nil {
		h.writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Content generated",
		"content": generated,
	})
}

type refineReq struct {
	Section     string `json:"section"`
	Instruction string `json:"instruction"`
}

func (h *ContentHandler) Refine(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req refineReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	newText, err := h.Svc.Refine(r.Context(), u.ID, id, req.Section, req.Instruction)
	if err != nil {
		h.writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Section refined",
		"new_text": newText,
	})
}

type feedbackReq struct {
	Section  string `json:"section"`
	Feedback string `json:"feedback"` // like / dislike
}

func (h *ContentHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Section) == "" {
		http.Error(w, "section required", http.StatusBadRequest)
		return
	}

	if err := h.Svc.AddFeedback(r.Context(), u.ID, id, req.Section, req.Feedback); err != nil {
		h.writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Feedback saved"})
}

type commentReq struct {
	Section string `json:"section"`
	Comment string `json:"comment"`
}

func (h *ContentHandler) Comment(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req commentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Section) == "" {
		http.Error(w, "section required", http.StatusBadRequest)
		return
	}

	if err := h.Svc.AddComment(r.Context(), u.ID, id, req.Section, req.Comment); err != nil {
		h.writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Comment saved"})
}

func (h *ContentHandler) History(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	history, err := h.Svc.History(r.Context(), u.ID, id)
	if err != nil {
		h.writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *ContentHandler) Content(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.UserFromContext(r.Context())

	id, ok := projectID(w, r)
	if !ok {
		return
	}

	c, err := h.Svc.Content(r.Context(), u.ID, id)
	if err != nil {
		h.writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *ContentHandler) writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "project not found", http.StatusNotFound)
	case errors.Is(err, content.ErrSectionNotFound):
		http.Error(w, "section not found", http.StatusBadRequest)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
