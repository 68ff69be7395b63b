package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/provamed/backend/internal/model"
)

// QuestionRepo handles MongoDB operations for the question catalog
type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) error
	GetByID(ctx context.Context, id string) (*model.Question, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*model.Question, error)
	List(ctx context.Context, filter model.QuestionFilter) ([]*model.Question, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) Create(ctx context.Context, question *model.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, question)
	return err
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil // question not found
	}
	if err != nil {
		return nil, err
	}

	return &question, nil
}

// GetByIDs batch-resolves questions for aggregation. IDs that no longer
// exist in the catalog are simply absent from the returned map.
func (r *questionRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Question, error) {
	questions := make(map[string]*model.Question, len(ids))
	if len(ids) == 0 {
		return questions, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var question model.Question
		if err := cursor.Decode(&question); err != nil {
			return nil, err
		}
		questions[question.ID] = &question
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *questionRepo) List(ctx context.Context, filter model.QuestionFilter) ([]*model.Question, error) {
	query := bson.M{}
	if filter.Specialty != "" {
		query["specialty"] = filter.Specialty
	}
	if filter.Source != "" {
		query["source"] = filter.Source
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}
