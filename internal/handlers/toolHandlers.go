package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"toolkit/internal/catalog"
	"toolkit/internal/metrics"
	"toolkit/internal/repositories"
	"toolkit/internal/utils"
)

type ToolHandler struct {
	catalog   *catalog.Catalog
	usageRepo repositories.UsageRepository
}

func NewToolHandler(cat *catalog.Catalog, usageRepo repositories.UsageRepository) *ToolHandler {
	return &ToolHandler{catalog: cat, usageRepo: usageRepo}
}

func (h *ToolHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		utils.RespondWithJSON(w, http.StatusOK, h.catalog.ByCategory(category))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.catalog.All())
}

func (h *ToolHandler) GetToolByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tool, err := h.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "tool not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tool)
}

// RecordUsage accepts a fire-and-forget usage event. The write happens in
// the background; the response does not wait for (or report) its outcome.
func (h *ToolHandler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.catalog.ByID(id); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "tool not found")
		return
	}

	metrics.UsageEventsTotal.Inc()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.usageRepo.RecordUse(ctx, id); err != nil {
			log.Warn().Err(err).Str("tool_id", id).Msg("Usage event dropped")
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}
