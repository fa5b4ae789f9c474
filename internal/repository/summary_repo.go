package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calmcompass/internal/model"
)

// SummaryRepo stores opt-in check-in summaries. Nothing lands here unless
// the user explicitly asks to save.
type SummaryRepo interface {
	Save(ctx context.Context, summary *model.SavedSummary) error
	GetByCheckin(ctx context.Context, checkinID string) (*model.SavedSummary, error)
}

type summaryRepo struct {
	collection *mongo.Collection
}

func NewSummaryRepo(db *mongo.Database) SummaryRepo {
	return &summaryRepo{collection: db.Collection("summaries")}
}

func (r *summaryRepo) Save(ctx context.Context, summary *model.SavedSummary) error {
	filter := bson.M{"checkinId": summary.CheckinID}
	update := bson.M{"$set": bson.M{
		"checkinId": summary.CheckinID,
		"text":      summary.Text,
		"savedAt":   summary.SavedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *summaryRepo) GetByCheckin(ctx context.Context, checkinID string) (*model.SavedSummary, error) {
	var summary model.SavedSummary
	err := r.collection.FindOne(ctx, bson.M{"checkinId": checkinID}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
