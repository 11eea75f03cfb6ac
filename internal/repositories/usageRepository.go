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

type UsageRepository interface {
	TopByWeeklyUses(ctx context.Context, limit int64) ([]models.UsageStat, error)
	RecordUse(ctx context.Context, toolID string) error
}

type usageRepository struct {
	db database.Service
}

func NewUsageRepository(db database.Service) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) TopByWeeklyUses(ctx context.Context, limit int64) ([]models.UsageStat, error) {
	queryType := "topByWeeklyUses"
	repository := "usage"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Client().Database("toolkit").Collection("usage_stats")
	opts := options.Find().
		SetSort(bson.D{{Key: "uses_last_7_days", Value: -1}}).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to query usage stats")
		return nil, fmt.Errorf("failed to query usage stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.UsageStat
	if err = cursor.All(ctx, &stats); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to decode usage stats")
		return nil, fmt.Errorf("failed to decode usage stats: %w", err)
	}
	return stats, nil
}

func (r *usageRepository) RecordUse(ctx context.Context, toolID string) error {
	queryType := "recordUse"
	repository := "usage"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Client().Database("toolkit").Collection("usage_stats")
	update := bson.M{
		"$inc": bson.M{
			"total_uses":        1,
			"uses_last_7_days":  1,
			"uses_last_30_days": 1,
		},
		"$set": bson.M{"last_used": primitive.NewDateTimeFromTime(time.Now())},
	}
	opts := options.Update().SetUpsert(true)

	_, err := collection.UpdateByID(ctx, toolID, update, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("tool_id", toolID).Msg("Failed to record tool use")
		return fmt.Errorf("failed to record tool use: %w", err)
	}
	return nil
}
