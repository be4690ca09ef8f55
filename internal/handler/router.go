package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	recordhandler "github.com/automate6500/dataserve/internal/handler/record"
	middlewarePkg "github.com/automate6500/dataserve/internal/middleware"
	recordmodel "github.com/automate6500/dataserve/internal/model/record"
)

// NewRouter wires HTTP routes to the record store.
func NewRouter(records recordmodel.Store, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	recordHandler := recordhandler.New(records, logger)
	recordHandler.RegisterRoutes(r)

	return r
}
