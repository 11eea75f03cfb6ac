package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"toolkit/internal/catalog"
	"toolkit/internal/services"
	"toolkit/internal/utils"
)

type DiscoveryHandler struct {
	catalog  *catalog.Catalog
	trending services.TrendingService
	related  services.RelatedService
}

func NewDiscoveryHandler(cat *catalog.Catalog, trending services.TrendingService, related services.RelatedService) *DiscoveryHandler {
	return &DiscoveryHandler{catalog: cat, trending: trending, related: related}
}

// GetTrending never fails; degraded usage data falls back to popular tools
// inside the service.
func (h *DiscoveryHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.trending.Trending(r.Context()))
}

func (h *DiscoveryHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
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

	maxTools := services.DefaultMaxRelated
	if maxParam := r.URL.Query().Get("max"); maxParam != "" {
		parsed, err := strconv.Atoi(maxParam)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "max must be a positive integer")
			return
		}
		maxTools = parsed
	}

	// An empty list is a valid answer: there is simply nothing to show.
	utils.RespondWithJSON(w, http.StatusOK, h.related.Related(tool.ID, tool.Category, maxTools))
}
