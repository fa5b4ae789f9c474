package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calmcompass/internal/model"
)

// FeedbackRepo stores anonymous "did this help" rows for later export.
type FeedbackRepo interface {
	Save(ctx context.Context, record *model.FeedbackRecord) error
	ListAll(ctx context.Context) ([]model.FeedbackRecord, error)
}

type feedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{collection: db.Collection("feedback")}
}

func (r *feedbackRepo) Save(ctx context.Context, record *model.FeedbackRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *feedbackRepo) ListAll(ctx context.Context) ([]model.FeedbackRecord, error) {
	// Stable order so the export is reproducible for retraining runs.
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.FeedbackRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
