package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/mobility/internal/http/catalog"
	"github.com/MrJamesThe3rd/mobility/internal/http/employee"
	"github.com/MrJamesThe3rd/mobility/internal/http/importcsv"
)

type Options struct {
	CORSOrigins []string
	Timeout     time.Duration
}

func New(
	opts Options,
	importV1 *importcsv.Handler,
	catalogV1 *catalog.Handler,
	employeesV1 *employee.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/import", importV1.Routes)

		r.Route("/catalog", catalogV1.Routes)

		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			employeesV1.Routes(r)
		})
	})

	return router
}
