// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rekorder/markirovka/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	registryHandler *handlers.RegistryHandler,
	accountHandler *handlers.AccountHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Credential records.
		r.Get("/accounts", accountHandler.ListAccounts)
		r.Post("/accounts", accountHandler.CreateAccount)
		r.Get("/accounts/{id}", accountHandler.GetAccount)
		r.Patch("/accounts/{id}", accountHandler.UpdateAccount)
		r.Delete("/accounts/{id}", accountHandler.DeleteAccount)

		// Counterparties.
		r.Get("/persons", registryHandler.ListPersons)
		r.Get("/persons/{externalId}", registryHandler.GetPerson)
		r.Put("/persons/{externalId}", registryHandler.SetPerson)

		// Contracts.
		r.Get("/contracts", registryHandler.ListContracts)
		r.Get("/contracts/{externalId}", registryHandler.GetContract)
		r.Put("/contracts/{externalId}", registryHandler.SetContract)

		// Creatives. by-erid is registered before {externalId} routes so the
		// literal segment wins.
		r.Get("/creatives", registryHandler.ListCreatives)
		r.Get("/creatives/by-erid/{erid}", registryHandler.GetCreativeByErid)
		r.Get("/creatives/{externalId}", registryHandler.GetCreative)
		r.Put("/creatives/{externalId}", registryHandler.SetCreative)
		r.Post("/creatives/{externalId}/texts", registryHandler.AddTexts)
		r.Post("/creatives/{externalId}/media", registryHandler.AddMedia)

		// Placements.
		r.Get("/pads", registryHandler.ListPads)
		r.Get("/pads/{externalId}", registryHandler.GetPad)
		r.Put("/pads/{externalId}", registryHandler.SetPad)

		// Media files.
		r.Post("/media/{externalId}", registryHandler.UploadMedia)
		r.Get("/media/{externalId}/file", registryHandler.DownloadMedia)
		r.Get("/media/{externalId}/checksum", registryHandler.GetMediaChecksum)
	})

	return r
}
