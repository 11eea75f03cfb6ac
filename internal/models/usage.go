package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UsageStat aggregates recorded uses for a single tool. One document per
// tool that has ever been used; absence of a document means zero usage.
type UsageStat struct {
	ToolID         string             `json:"tool_id" bson:"_id"`
	TotalUses      int64              `json:"total_uses" bson:"total_uses"`
	UniqueUsers    int64              `json:"unique_users" bson:"unique_users"`
	UsesLast7Days  int64              `json:"uses_last_7_days" bson:"uses_last_7_days"`
	UsesLast30Days int64              `json:"uses_last_30_days" bson:"uses_last_30_days"`
	LastUsed       primitive.DateTime `json:"last_used" bson:"last_used"`
}
