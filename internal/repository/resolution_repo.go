package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/provamed/backend/internal/model"
)

// ErrDuplicateResolution is returned when inserting a resolution for a
// question that already has one. Callers racing on first generation treat
// this as a no-op.
var ErrDuplicateResolution = errors.New("resolution already exists for question")

// ResolutionRepo handles MongoDB operations for cached resolutions
type ResolutionRepo interface {
	Insert(ctx context.Context, resolution *model.Resolution) error
	GetByQuestionID(ctx context.Context, questionID string) (*model.Resolution, error)
	EnsureIndexes(ctx context.Context) error
}

type resolutionRepo struct {
	collection *mongo.Collection
}

// NewResolutionRepo creates a new resolution repository
func NewResolutionRepo(db *mongo.Database) ResolutionRepo {
	return &resolutionRepo{
		collection: db.Collection("resolutions"),
	}
}

func (r *resolutionRepo) Insert(ctx context.Context, resolution *model.Resolution) error {
	_, err := r.collection.InsertOne(ctx, resolution)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateResolution
	}
	return err
}

func (r *resolutionRepo) GetByQuestionID(ctx context.Context, questionID string) (*model.Resolution, error) {
	var resolution model.Resolution
	err := r.collection.FindOne(ctx, bson.M{"questionId": questionID}).Decode(&resolution)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &resolution, nil
}

// EnsureIndexes creates the unique questionId index backing the
// first-writer-wins insert contract.
func (r *resolutionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "questionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
