package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shreywv2007/StudyFlow/internal/auth"
	"github.com/shreywv2007/StudyFlow/internal/logger"
	"github.com/shreywv2007/StudyFlow/internal/middleware"
	"github.com/shreywv2007/StudyFlow/internal/planner"
	"github.com/shreywv2007/StudyFlow/internal/store"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Store       *store.Store
	Sessions    auth.Sessions // nil: no session routes
	Log         *logger.Logger
	CORSOrigins []string
	Now         func() time.Time // nil: time.Now
}

// NewRouter builds the full HTTP surface.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = logger.Nop()
	}

	authHandler := auth.NewHandler(d.Store, d.Sessions, d.Log)
	plannerHandler := planner.NewHandler(d.Store, d.Log)
	if d.Now != nil {
		plannerHandler.WithClock(d.Now)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			if d.Sessions != nil {
				r.Post("/logout", authHandler.Logout)
				r.With(middleware.RequireAuth(d.Sessions)).Get("/me", authHandler.Me)
			}
		})

		r.Get("/tasks/{id}", plannerHandler.ListTasks)
		r.Post("/tasks", plannerHandler.CreateTask)
		r.Put("/tasks/{id}", plannerHandler.UpdateTask)
		r.Delete("/tasks/{id}", plannerHandler.DeleteTask)

		r.Get("/courses/{id}", plannerHandler.ListCourses)
		r.Post("/courses", plannerHandler.CreateCourse)
		r.Put("/courses/{id}", plannerHandler.UpdateCourse)
		r.Delete("/courses/{id}", plannerHandler.DeleteCourse)

		r.Get("/study-sessions/{id}", plannerHandler.ListStudySessions)
		r.Post("/study-sessions", plannerHandler.CreateStudySession)
		r.Delete("/study-sessions/{id}", plannerHandler.DeleteStudySession)

		r.Get("/notes/{id}", plannerHandler.ListNotes)
		r.Post("/notes", plannerHandler.CreateNote)
		r.Put("/notes/{id}", plannerHandler.UpdateNote)
		r.Delete("/notes/{id}", plannerHandler.DeleteNote)

		r.Get("/wellbeing/{userId}", plannerHandler.ListWellbeing)
		r.Post("/wellbeing", plannerHandler.CreateWellbeing)

		r.Get("/settings/{userId}", plannerHandler.GetSettings)
		r.Put("/settings/{userId}", plannerHandler.UpdateSettings)

		r.Get("/dashboard/{userId}", plannerHandler.Dashboard)
		r.Get("/progress/{userId}", plannerHandler.Progress)
	})

	return r
}
