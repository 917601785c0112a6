// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router serving every route under /api.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", authTokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})
		r.Get("/version", h.getServerVersion)

		r.Route("/books", func(r chi.Router) {
			r.Use(withGZip)
			// public listing; ?mine=true needs a token
			r.With(h.authWhen(mineRequested)).Get("/", h.listBooks)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createBook)
				r.Put("/{id}", h.updateBook)
				r.Delete("/{id}", h.deleteBook)
			})
		})

		r.Route("/stickers", func(r chi.Router) {
			r.Use(h.auth, withGZip)
			r.Get("/", h.listStickers)
			r.Post("/", h.createSticker)
			r.Put("/{id}", h.updateSticker)
			r.Delete("/{id}", h.deleteSticker)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// mineRequested reports whether the book listing asks for the caller's own
// books. Only the exact value "true" does.
func mineRequested(r *http.Request) bool {
	return r.URL.Query().Get("mine") == "true"
}
