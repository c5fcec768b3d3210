package domain

import "time"

// UserFavorites is the per-user document in the `users` collection.
//
// Favorites is a set of prospect IDs and FavoriteStatus mirrors membership
// as a map for O(1) lookup of a single prospect. A writer that touches one
// must touch the other in the same document update, so that
// prospectID ∈ Favorites ⇔ FavoriteStatus[prospectID] == true holds after
// every write.
type UserFavorites struct {
	UserID         string          `bson:"_id" json:"user_id"`
	Email          string          `bson:"email,omitempty" json:"email,omitempty"`
	Favorites      []string        `bson:"favorites" json:"favorites"`
	FavoriteStatus map[string]bool `bson:"favoriteStatus" json:"favorite_status"`
	CreatedAt      time.Time       `bson:"createdAt,omitempty" json:"created_at,omitempty"`
}

// IsFavorite reports membership using the status map.
func (f *UserFavorites) IsFavorite(prospectID string) bool {
	if f == nil || f.FavoriteStatus == nil {
		return false
	}
	return f.FavoriteStatus[prospectID]
}

// Consistent reports whether the favorites set and the status map agree.
// Used by tests to assert the document invariant.
func (f *UserFavorites) Consistent() bool {
	if f == nil {
		return true
	}
	inSet := make(map[string]bool, len(f.Favorites))
	for _, id := range f.Favorites {
		inSet[id] = true
	}
	for id, fav := range f.FavoriteStatus {
		if fav != inSet[id] {
			return false
		}
	}
	for id := range inSet {
		if !f.FavoriteStatus[id] {
			return false
		}
	}
	return true
}
