package repository

import (
	"context"
	"errors"
	"time"

	"prospecttrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FavoriteRepository is the injected handle to the per-user favorites
// documents. Implementations must apply SetFavorite as one atomic document
// update: the favorites set and the status flag change together or not at
// all, and adding an already-present member is a no-op.
type FavoriteRepository interface {
	// EnsureUser creates an empty favorites document if none exists.
	EnsureUser(ctx context.Context, userID string) error
	// SetFavorite adds or removes prospectID from the favorites set and
	// writes favoriteStatus[prospectID] in the same update.
	SetFavorite(ctx context.Context, userID, prospectID string, favorite bool) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserFavorites, error)
	// ProvisionUser seeds a document for a freshly created identity.
	ProvisionUser(ctx context.Context, userID, email string) error
	// RemoveUser drops the document when the identity is deleted upstream.
	RemoveUser(ctx context.Context, userID string) error
}

type favoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &favoriteRepository{col: db.Collection("users")}
}

func (r *favoriteRepository) EnsureUser(ctx context.Context, userID string) error {
	_, err := r.col.UpdateByID(ctx, userID,
		bson.M{"$setOnInsert": bson.M{
			"favorites":      []string{},
			"favoriteStatus": bson.M{},
			"createdAt":      time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *favoriteRepository) SetFavorite(ctx context.Context, userID, prospectID string, favorite bool) error {
	statusField := "favoriteStatus." + prospectID

	// $addToSet / $pull plus the status $set run as a single document
	// update, so readers never observe one half without the other.
	var update bson.M
	if favorite {
		update = bson.M{
			"$addToSet": bson.M{"favorites": prospectID},
			"$set":      bson.M{statusField: true},
		}
	} else {
		update = bson.M{
			"$pull": bson.M{"favorites": prospectID},
			"$set":  bson.M{statusField: false},
		}
	}

	_, err := r.col.UpdateByID(ctx, userID, update, options.Update().SetUpsert(true))
	return err
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserFavorites, error) {
	var doc domain.UserFavorites
	err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Document absence is never an error; the caller sees an empty set.
		return &domain.UserFavorites{
			UserID:         userID,
			Favorites:      []string{},
			FavoriteStatus: map[string]bool{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *favoriteRepository) ProvisionUser(ctx context.Context, userID, email string) error {
	_, err := r.col.UpdateByID(ctx, userID,
		bson.M{
			"$set": bson.M{"email": email},
			"$setOnInsert": bson.M{
				"favorites":      []string{},
				"favoriteStatus": bson.M{},
				"createdAt":      time.Now().UTC(),
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *favoriteRepository) RemoveUser(ctx context.Context, userID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
