package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"toolkit/internal/catalog"
	"toolkit/internal/database"
	"toolkit/internal/middlewares"
	"toolkit/internal/repositories"
	"toolkit/internal/services"
)

type Server struct {
	port            int
	httpServer      *http.Server
	db              database.Service
	catalog         *catalog.Catalog
	usageRepo       repositories.UsageRepository
	trendingService services.TrendingService
	relatedService  services.RelatedService
	bookmarkStore   *services.BookmarkCacheStore
}

func NewServer() *Server {
	portStr := os.Getenv("PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Warn().Str("port", portStr).Msg("Invalid PORT environment variable. Using default 8080.")
		port = 8080
	}

	db := database.New()
	cat := catalog.Default()

	usageRepo := repositories.NewUsageRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)

	s := &Server{
		port:      port,
		db:        db,
		catalog:   cat,
		usageRepo: usageRepo,
		trendingService: services.NewTrendingService(usageRepo, cat, services.TrendingConfig{
			Size:      services.DefaultTrendingSize,
			Staleness: 5 * time.Minute,
			Retention: 10 * time.Minute,
		}),
		relatedService: services.NewRelatedService(cat),
		bookmarkStore:  services.NewBookmarkCacheStore(bookmarkRepo, 30*time.Minute),
	}

	go s.bookmarkStore.Cleanup()
	go middlewares.CleanupVisitors()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	if err := s.db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
