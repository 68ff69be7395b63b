package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/provamed/backend/internal/model"
)

// AnswerEventRepo handles MongoDB operations for the append-only answer
// event log. Events are never updated; the only delete path is the per-user
// full-history reset.
type AnswerEventRepo interface {
	Create(ctx context.Context, event *model.AnswerEvent) error
	GetByUserID(ctx context.Context, userID string) ([]*model.AnswerEvent, error)
	DeleteByUserID(ctx context.Context, userID string) error
	EnsureIndexes(ctx context.Context) error
}

type answerEventRepo struct {
	collection *mongo.Collection
}

// NewAnswerEventRepo creates a new answer event repository
func NewAnswerEventRepo(db *mongo.Database) AnswerEventRepo {
	return &answerEventRepo{
		collection: db.Collection("answer_events"),
	}
}

func (r *answerEventRepo) Create(ctx context.Context, event *model.AnswerEvent) error {
	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *answerEventRepo) GetByUserID(ctx context.Context, userID string) ([]*model.AnswerEvent, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.AnswerEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *answerEventRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// EnsureIndexes creates the userId and windowed-trend query indexes.
func (r *answerEventRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "answeredAt", Value: -1}}},
	})
	return err
}
