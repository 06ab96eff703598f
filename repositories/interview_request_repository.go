package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsfarah/interview_tracker_backend/config"
	"github.com/jsfarah/interview_tracker_backend/models"
)

// ErrNotFound is returned when no interview request matches the given id.
var ErrNotFound = errors.New("interview request not found")

type InterviewRequestRepository struct {
	collection *mongo.Collection
}

func NewInterviewRequestRepository(db *mongo.Client) *InterviewRequestRepository {
	return &InterviewRequestRepository{
		collection: config.GetCollection(db, "interviewRequests"),
	}
}

// FindAll returns every interview request, most recent first.
func (r *InterviewRequestRepository) FindAll(ctx context.Context) ([]models.InterviewRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// Non-nil so an empty collection still serializes as a JSON array
	requests := []models.InterviewRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// Insert stores a new pending request and returns it with its assigned id.
func (r *InterviewRequestRepository) Insert(ctx context.Context, name, email, jobTitle string) (*models.InterviewRequest, error) {
	now := time.Now().UTC()
	request := models.InterviewRequest{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		JobTitle:  jobTitle,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

// Accept sets the request's status to "accepted" and returns the updated
// document. The update is a single atomic store operation; accepting an
// already-accepted request re-sets the same value and is not an error.
func (r *InterviewRequestRepository) Accept(ctx context.Context, id string) (*models.InterviewRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status":    models.StatusAccepted,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.InterviewRequest
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}
