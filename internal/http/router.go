package http

import (
	"net/http"

	"drafter/internal/auth"
	"drafter/internal/config"
	"drafter/internal/content"
	"drafter/internal/http/handler"
	mw "drafter/internal/http/middleware"
	"drafter/internal/llm"
	"drafter/internal/project"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, gateway llm.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"backend running"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	requireAuth := auth.RequireAuth(jwtSvc, db)

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)
	r.With(requireAuth).Get("/me", ah.Me)

	projSvc := &project.Service{DB: db, PruneRemoved: cfg.OutlinePruneRemoved}
	contSvc := &content.Service{DB: db, LLM: gateway}

	ph := &handler.ProjectHandler{Svc: projSvc}
	ch := &handler.ContentHandler{Svc: contSvc}
	eh := &handler.ExportHandler{Svc: projSvc, Dir: cfg.ExportDir}

	r.Route("/projects", func(r chi.Router) {
		// outline suggestion for a not-yet-created project needs no token
		r.Post("/ai-outline", ph.SuggestOutline)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/create", ph.Create)
			r.Get("/all", ph.List)
			r.Get("/{id}", ph.Get)
			r.Post("/{id}/set-outline", ph.SetOutline)
			r.Get("/{id}/ai-outline", ph.SuggestOutlineForProject)
		})
	})

	r.Route("/content", func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/{id}/generate-content", ch.Generate)
		r.Post("/{id}/refine-section", ch.Refine)
		r.Get("/{id}/history", ch.History)
		r.Post("/{id}/feedback", ch.Feedback)
		r.Post("/{id}/comment", ch.Comment)
		r.Get("/{id}/get-content", ch.Content)
		r.Get("/{id}/export-docx", eh.Docx)
		r.Get("/{id}/export-pptx", eh.Pptx)
	})

	return r
}
