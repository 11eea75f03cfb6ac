package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"toolkit/internal/catalog"
	"toolkit/internal/middlewares"
	"toolkit/internal/services"
	"toolkit/internal/utils"
)

type BookmarkHandler struct {
	catalog *catalog.Catalog
	store   *services.BookmarkCacheStore
}

func NewBookmarkHandler(cat *catalog.Catalog, store *services.BookmarkCacheStore) *BookmarkHandler {
	return &BookmarkHandler{catalog: cat, store: store}
}

type bookmarksResponse struct {
	ToolIDs []string `json:"tool_ids"`
	Loaded  bool     `json:"loaded"`
}

func (h *BookmarkHandler) sessionCache(w http.ResponseWriter, r *http.Request) (*services.BookmarkCache, bool) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "no session attached to request")
		return nil, false
	}
	return h.store.Get(session), true
}

// GetBookmarks returns the session's bookmarked tool ids in creation order.
// The loaded flag lets the frontend tell "no bookmarks" from "not loaded
// yet" when a load has failed.
func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	cache, ok := h.sessionCache(w, r)
	if !ok {
		return
	}

	if !cache.Loaded() {
		if err := cache.Load(r.Context()); err != nil {
			log.Error().Err(err).Msg("Bookmark load failed, serving last-known state")
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, bookmarksResponse{
		ToolIDs: cache.ToolIDs(),
		Loaded:  cache.Loaded(),
	})
}

func (h *BookmarkHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	toolID := mux.Vars(r)["toolId"]
	if _, err := h.catalog.ByID(toolID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "tool not found")
		return
	}

	cache, ok := h.sessionCache(w, r)
	if !ok {
		return
	}

	if !cache.Loaded() {
		if err := cache.Load(r.Context()); err != nil {
			log.Error().Err(err).Msg("Cannot toggle bookmark before a successful load")
			utils.RespondWithError(w, http.StatusBadGateway, "bookmarks unavailable, try again")
			return
		}
	}

	bookmarked, err := cache.Toggle(r.Context(), toolID)
	if err != nil {
		// The cache is unchanged; the frontend shows a notice and may retry.
		log.Error().Err(err).Str("tool_id", toolID).Msg("Bookmark toggle failed")
		utils.RespondWithError(w, http.StatusBadGateway, "could not update bookmark, try again")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"tool_id":    toolID,
		"bookmarked": bookmarked,
	})
}

func (h *BookmarkHandler) RefreshBookmarks(w http.ResponseWriter, r *http.Request) {
	cache, ok := h.sessionCache(w, r)
	if !ok {
		return
	}

	if err := cache.Refresh(r.Context()); err != nil {
		log.Error().Err(err).Msg("Bookmark refresh failed")
		utils.RespondWithError(w, http.StatusBadGateway, "could not refresh bookmarks, try again")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bookmarksResponse{
		ToolIDs: cache.ToolIDs(),
		Loaded:  cache.Loaded(),
	})
}

// GetCacheStats exposes bookmark cache store activity for debugging.
func (h *BookmarkHandler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.store.Stats())
}
