package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server
func NewMux(service Service, timeout time.Duration, allowedOrigins []string, l logrus.FieldLogger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(NewLoggingMiddleware(l))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowCredentials: true,
	}))
	r.Use(NewTimeoutMiddleware(timeout))

	r.Get("/stats/github/{username}", NewGithubStatsHandler(service, l))
	r.Get("/stats/leetcode/{username}", NewLeetCodeStatsHandler(service, l))
	r.Get("/health", NewHealthHandler())

	return r
}
