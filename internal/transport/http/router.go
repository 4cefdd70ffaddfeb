// internal/transport/http/router.go
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports backing-store liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps collects everything the router mounts.
type RouterDeps struct {
	Auth          *AuthHandler
	Registration  *RegistrationHandler
	Applications  *ApplicationHandler
	Documents     *DocumentHandler
	Authenticator Authenticator
	Postgres      Pinger
	Redis         Pinger
}

// NewRouter wires the public surface. Auth routes are open; the wizard and
// dashboard routes sit behind the session guard.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", healthHandler(deps.Postgres, deps.Redis))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.HandleRegister)
			r.Post("/login", deps.Auth.HandleLogin)
			r.Post("/logout", deps.Auth.HandleLogout)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireSession(deps.Authenticator))

			r.Route("/register", func(r chi.Router) {
				r.Get("/steps", deps.Registration.HandleSteps)
				r.Put("/steps/{path}", deps.Registration.HandleSaveStep)
				r.Get("/draft", deps.Registration.HandleDraft)
				r.Delete("/draft", deps.Registration.HandleResetDraft)
				r.Post("/submit", deps.Applications.HandleSubmit)

				r.Get("/documents/requirements", deps.Documents.HandleRequirements)
				r.Post("/documents/{slot}", deps.Documents.HandleUpload)
			})

			r.Get("/applications", deps.Applications.HandleList)
		})
	})

	return r
}

func healthHandler(pg, rd Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"postgres": "ok", "redis": "ok"}
		healthy := true
		if pg != nil {
			if err := pg.Ping(ctx); err != nil {
				status["postgres"] = err.Error()
				healthy = false
			}
		}
		if rd != nil {
			if err := rd.Ping(ctx); err != nil {
				status["redis"] = err.Error()
				healthy = false
			}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, status)
	}
}
