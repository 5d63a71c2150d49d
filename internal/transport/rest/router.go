package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wojtowpj/beerlog-backend/internal/transport/middleware"
)

// Router bundles the handlers and middleware needed to build the HTTP
// routing tree. Global middleware wraps every route; Authn wraps every
// route except token issuance, registration, and health probes.
type Router struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Users     *UserHandler
	Glasses   *GlassHandler
	Beers     *BeerHandler
	Reviews   *ReviewHandler
	Favorites *FavoriteHandler

	Global []middleware.Middleware
	Authn  middleware.Middleware
}

// Handler builds the chi routing tree.
func (rt Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", rt.Health.Health)
	r.Get("/live", rt.Health.Live)
	r.Get("/ready", rt.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/token", rt.Auth.Token)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.Users.Create)

			r.Group(func(r chi.Router) {
				r.Use(rt.Authn)

				r.Get("/", rt.Users.List)
				r.Route("/{userID}", func(r chi.Router) {
					r.Get("/", rt.Users.Get)
					r.Put("/", rt.Users.Update)
					r.Delete("/", rt.Users.Delete)
					r.Get("/reviews", rt.Reviews.ListForUser)
					r.Get("/favorites", rt.Favorites.ListForUser)
					r.Post("/favorites", rt.Favorites.AddForUser)
					r.Delete("/favorites", rt.Favorites.RemoveForUser)
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(rt.Authn)

			r.Route("/glasses", func(r chi.Router) {
				r.Post("/", rt.Glasses.Create)
				r.Get("/", rt.Glasses.List)
				r.Route("/{glassID}", func(r chi.Router) {
					r.Get("/", rt.Glasses.Get)
					r.Put("/", rt.Glasses.Update)
					r.Delete("/", rt.Glasses.Delete)
				})
			})

			r.Route("/beers", func(r chi.Router) {
				r.Post("/", rt.Beers.Create)
				r.Get("/", rt.Beers.List)
				r.Route("/{beerID}", func(r chi.Router) {
					r.Get("/", rt.Beers.Get)
					r.Put("/", rt.Beers.Update)
					r.Delete("/", rt.Beers.Delete)

					r.Get("/reviews", rt.Reviews.ListForBeer)
					r.Post("/reviews", rt.Reviews.Submit)

					r.Get("/favorite", rt.Favorites.Check)
					r.Put("/favorite", rt.Favorites.Add)
					r.Delete("/favorite", rt.Favorites.Remove)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Post("/", rt.Reviews.Create)
				r.Get("/", rt.Reviews.List)
				r.Get("/{reviewID}", rt.Reviews.Get)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Post("/", rt.Favorites.Create)
				r.Get("/", rt.Favorites.List)
				r.Route("/{favoriteID}", func(r chi.Router) {
					r.Get("/", rt.Favorites.Get)
					r.Delete("/", rt.Favorites.DeleteByID)
				})
			})
		})
	})

	return middleware.Chain(rt.Global...)(r)
}
