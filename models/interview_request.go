package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InterviewRequest status values
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// InterviewRequest model
type InterviewRequest struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	JobTitle  string             `json:"jobTitle" bson:"jobTitle"`
	Status    string             `json:"status" bson:"status"` // "pending" or "accepted"
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateInterviewRequestRequest model for new submissions
type CreateInterviewRequestRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	JobTitle string `json:"jobTitle" validate:"required"`
}

// ErrorResponse model
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse model for the health check endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
