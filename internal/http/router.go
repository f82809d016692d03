package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/gymd/internal/auth"
	"github.com/MrJamesThe3rd/gymd/internal/http/authn"
	"github.com/MrJamesThe3rd/gymd/internal/http/billing"
	"github.com/MrJamesThe3rd/gymd/internal/http/checkin"
	"github.com/MrJamesThe3rd/gymd/internal/http/importcsv"
	"github.com/MrJamesThe3rd/gymd/internal/http/membership"
	"github.com/MrJamesThe3rd/gymd/internal/http/middleware"
)

func New(
	tokens *auth.TokenService,
	authV1 *authn.Handler,
	membershipsV1 *membership.Handler,
	invoicesV1 *billing.Handler,
	checkinsV1 *checkin.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Route("/memberships", func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				membershipsV1.Routes(r)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				invoicesV1.Routes(r)
			})

			r.Route("/checkins", func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				checkinsV1.Routes(r)
			})

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
