package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toolkit/internal/handlers"
	"toolkit/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.CorsMiddleware)
	r.Use(middlewares.Metrics)
	// Session resolution must run before the rate limiter so throttling
	// keys on the device session, not the shared client IP.
	r.Use(middlewares.SessionMiddleware)
	r.Use(middlewares.RateLimit)

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.HelloHandler)
	r.HandleFunc("/health", ch.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	s.registerToolRoutes(r)
	s.registerBookmarkRoutes(r)

	return r
}

func (s *Server) registerToolRoutes(r *mux.Router) {
	th := handlers.NewToolHandler(s.catalog, s.usageRepo)
	dh := handlers.NewDiscoveryHandler(s.catalog, s.trendingService, s.relatedService)

	r.HandleFunc("/api/tools", th.GetTools).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/tools/trending", dh.GetTrending).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/tools/{id}", th.GetToolByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/tools/{id}/related", dh.GetRelated).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/tools/{id}/usage", th.RecordUsage).Methods("POST", "OPTIONS")
}

func (s *Server) registerBookmarkRoutes(r *mux.Router) {
	bh := handlers.NewBookmarkHandler(s.catalog, s.bookmarkStore)

	r.HandleFunc("/api/bookmarks", bh.GetBookmarks).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/bookmarks/refresh", bh.RefreshBookmarks).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/bookmarks/stats", bh.GetCacheStats).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/bookmarks/{toolId}/toggle", bh.ToggleBookmark).Methods("POST", "OPTIONS")
}
