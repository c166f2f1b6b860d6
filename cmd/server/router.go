package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/middleware"
)

const openAPIPath = "api/openapi.yaml"

func setupRouter(handler api.ServerInterface) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", req.Method+" is not allowed here")
	})

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		http.ServeFile(w, req, openAPIPath)
	})

	return api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, req *http.Request, err error) {
			middleware.WriteError(w, req, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		},
	})
}
