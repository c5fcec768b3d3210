package repository

import (
	"context"
	"errors"

	"prospecttrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RatingRepository is the injected handle to the per-prospect ratings
// documents. Append must behave as a conflict-free set union: two
// concurrent appends of distinct values both survive, and appending a
// value already in the sequence changes nothing.
type RatingRepository interface {
	GetByProspectID(ctx context.Context, prospectID string) (*domain.ProspectRatings, error)
	// Append adds stars to the sequence (creating the document if absent)
	// and returns the authoritative post-write document.
	Append(ctx context.Context, prospectID string, stars int) (*domain.ProspectRatings, error)
}

type ratingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) RatingRepository {
	return &ratingRepository{col: db.Collection("prospects")}
}

func (r *ratingRepository) GetByProspectID(ctx context.Context, prospectID string) (*domain.ProspectRatings, error) {
	var doc domain.ProspectRatings
	err := r.col.FindOne(ctx, bson.M{"_id": prospectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &domain.ProspectRatings{ProspectID: prospectID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ratingRepository) Append(ctx context.Context, prospectID string, stars int) (*domain.ProspectRatings, error) {
	// $addToSet with upsert covers both the first-write-initializes case and
	// concurrent appends from other sessions without lost updates.
	_, err := r.col.UpdateByID(ctx, prospectID,
		bson.M{"$addToSet": bson.M{"ratings": stars}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return r.GetByProspectID(ctx, prospectID)
}
