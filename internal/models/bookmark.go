package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Bookmark pins a tool for an anonymous device session. Unique per
// (user_session, tool_id).
type Bookmark struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserSession string             `json:"user_session" bson:"user_session"`
	ToolID      string             `json:"tool_id" bson:"tool_id"`
	CreatedAt   primitive.DateTime `json:"created_at" bson:"created_at"`
}
