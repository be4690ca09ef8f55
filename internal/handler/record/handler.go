package record

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/automate6500/dataserve/internal/guid"
	recordmodel "github.com/automate6500/dataserve/internal/model/record"
	"github.com/automate6500/dataserve/internal/pathsafe"
	"github.com/automate6500/dataserve/pkg/utils"
)

// Handler serves the record routes.
type Handler struct {
	records recordmodel.Store
	log     zerolog.Logger
}

// New creates a record handler.
func New(records recordmodel.Store, log zerolog.Logger) *Handler {
	return &Handler{
		records: records,
		log:     log,
	}
}

// RegisterRoutes mounts the record routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Get("/", h.handleList)
	r.Get("/{guid}", h.handleGet)
}

// handleList returns every record in file order.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.List(r.Context())
	if err != nil {
		h.respondLoadError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

// handleGet returns the record matching the guid path parameter.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	key, err := guid.Normalize(chi.URLParam(r, "guid"))
	if err != nil {
		utils.RespondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.records.GetByGUID(r.Context(), key)
	switch {
	case errors.Is(err, recordmodel.ErrNotFound):
		h.log.Warn().Str("guid", key).Msg("record not found")
		utils.RespondDetail(w, http.StatusNotFound, fmt.Sprintf("Item with GUID '%s' not found", key))
	case err != nil:
		h.respondLoadError(w, err)
	default:
		utils.RespondJSON(w, http.StatusOK, rec)
	}
}

// handleHealth reports whether the data file is currently servable.
// It always answers 200 so probes distinguish degraded from down.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.List(r.Context())
	if err != nil {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"status": "unhealthy",
			"error":  loadCause(err),
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":     "healthy",
		"data_items": strconv.Itoa(len(records)),
	})
}

func (h *Handler) respondLoadError(w http.ResponseWriter, err error) {
	h.log.Error().Err(err).Msg("failed to load data")
	utils.RespondDetail(w, http.StatusInternalServerError, "Failed to load data: "+loadCause(err))
}

// loadCause renders a load failure for a response body. A containment
// failure collapses to its fixed message so the rejected absolute path
// never reaches a client.
func loadCause(err error) string {
	if errors.Is(err, pathsafe.ErrOutsideBase) {
		return pathsafe.ErrOutsideBase.Error()
	}
	return err.Error()
}
