package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stocktrack/internal/config"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	storesHandler := &StoresHandler{DB: db}
	productsHandler := &ProductsHandler{DB: db}
	stockHandler := &StockHandler{DB: db}
	transfersHandler := &TransfersHandler{DB: db, ApplyStock: cfg.ApplyTransfers}
	devHandler := &DevHandler{DB: db}

	r.Route("/api", func(r chi.Router) {
		// Public: registration and login.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Everything else requires an authenticated session.
		r.Group(func(r chi.Router) {
			r.Use(Authenticated(jwtSecret, db))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Get("/products", productsHandler.List)
			r.Post("/products", productsHandler.Create)
			r.Delete("/products/{id}", productsHandler.Delete)
			r.Put("/products/{id}/photo", productsHandler.UploadPhoto)
			r.Get("/products/{id}/photo", productsHandler.GetPhoto)

			r.Get("/stores", storesHandler.List)
			r.Post("/stores", storesHandler.Create)

			r.Get("/stock/{storeId}", stockHandler.ListByStore)
			r.Post("/stock", stockHandler.Create)
			r.Patch("/stock/{id}", stockHandler.SetQuantity)

			r.Get("/transfers/{storeId}", transfersHandler.ListByStore)
			r.Post("/transfers", transfersHandler.Create)
			r.Patch("/transfers/{id}/complete", transfersHandler.Complete)

			// User management (admin only).
			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)
				r.Get("/users", usersHandler.List)
				r.Post("/users", usersHandler.Create)
			})

			if cfg.DevRoutes {
				r.Post("/dev/init", devHandler.Init)
			}
		})
	})

	return r
}
