package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"toolkit/internal/database"
	"toolkit/internal/models"
	"toolkit/internal/utils"
)

type BookmarkRepository interface {
	FindToolIDsBySession(ctx context.Context, session string) ([]string, error)
	Insert(ctx context.Context, session, toolID string) error
	Delete(ctx context.Context, session, toolID string) error
}

type bookmarkRepository struct {
	db database.Service
}

func NewBookmarkRepository(db database.Service) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// FindToolIDsBySession returns the session's bookmarked tool ids ordered by
// creation time, oldest first.
func (r *bookmarkRepository) FindToolIDsBySession(ctx context.Context, session string) ([]string, error) {
	queryType := "findBySession"
	repository := "bookmark"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Client().Database("toolkit").Collection("bookmarks")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := collection.Find(ctx, bson.M{"user_session": session}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve bookmarks: %w", err)
	}
	defer cursor.Close(ctx)

	var bookmarks []models.Bookmark
	if err := cursor.All(ctx, &bookmarks); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding bookmarks: %w", err)
	}

	toolIDs := make([]string, 0, len(bookmarks))
	for _, bm := range bookmarks {
		toolIDs = append(toolIDs, bm.ToolID)
	}
	return toolIDs, nil
}

// Insert is idempotent: inserting an already-bookmarked tool is a no-op, so
// the (user_session, tool_id) pair stays unique without a schema-level index.
func (r *bookmarkRepository) Insert(ctx context.Context, session, toolID string) error {
	queryType := "insert"
	repository := "bookmark"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Client().Database("toolkit").Collection("bookmarks")
	filter := bson.M{"user_session": session, "tool_id": toolID}
	update := bson.M{"$setOnInsert": bson.M{
		"created_at": primitive.NewDateTimeFromTime(time.Now()),
	}}
	opts := options.Update().SetUpsert(true)

	_, err := collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("tool_id", toolID).Msg("Failed to insert bookmark")
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// Delete is idempotent: removing a bookmark that is already gone succeeds.
func (r *bookmarkRepository) Delete(ctx context.Context, session, toolID string) error {
	queryType := "delete"
	repository := "bookmark"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Client().Database("toolkit").Collection("bookmarks")
	filter := bson.M{"user_session": session, "tool_id": toolID}

	_, err := collection.DeleteOne(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("tool_id", toolID).Msg("Failed to delete bookmark")
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}
