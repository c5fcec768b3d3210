package favorite

import (
	"context"
	"log"

	"prospecttrack/internal/domain"
	"prospecttrack/internal/repository"
)

// Service maintains the per-user favorites documents. Follow and Unfollow
// are explicit, idempotent commands; Toggle is the compatibility entry
// point for clients that still send their last-known button state.
type Service struct {
	favorites repository.FavoriteRepository
	prospects ProspectSource
}

func NewService(favorites repository.FavoriteRepository, prospects ProspectSource) *Service {
	return &Service{favorites: favorites, prospects: prospects}
}

// Follow adds the prospect to the user's favorites set and flips the status
// flag in the same document update. Re-following an already-followed
// prospect is a no-op, not an error.
func (s *Service) Follow(ctx context.Context, userID, prospectID string) (ToggleResult, error) {
	return s.setFavorite(ctx, userID, prospectID, true)
}

// Unfollow removes the prospect and clears the status flag atomically.
func (s *Service) Unfollow(ctx context.Context, userID, prospectID string) (ToggleResult, error) {
	return s.setFavorite(ctx, userID, prospectID, false)
}

// Toggle flips membership based on the caller-supplied state. The explicit
// Follow/Unfollow commands are preferred: two rapid toggles can both read
// the same stale state and drive the store to an unintended final value,
// whereas set/unset commands are idempotent.
func (s *Service) Toggle(ctx context.Context, userID, prospectID string, currentlyFavorite bool) (ToggleResult, error) {
	if currentlyFavorite {
		return s.Unfollow(ctx, userID, prospectID)
	}
	return s.Follow(ctx, userID, prospectID)
}

func (s *Service) setFavorite(ctx context.Context, userID, prospectID string, favorite bool) (ToggleResult, error) {
	if userID == "" {
		return ToggleResult{}, ErrUnauthorized
	}
	if prospectID == "" {
		return ToggleResult{}, ErrInvalidRequest
	}

	// Lazy initialization: first follow action for a user creates the
	// document with an empty set and map.
	if err := s.favorites.EnsureUser(ctx, userID); err != nil {
		return storeFailure(favorite), nil
	}

	if err := s.favorites.SetFavorite(ctx, userID, prospectID, favorite); err != nil {
		return storeFailure(favorite), nil
	}

	message := "Prospect followed successfully"
	if !favorite {
		message = "Prospect unfollowed successfully"
	}
	return ToggleResult{Status: "success", IsFavorite: favorite, Message: message}, nil
}

// storeFailure reports an error result with the state unchanged: the write
// did not happen, so the caller keeps rendering what it already had. No
// retry is attempted here; retry policy belongs to the caller.
func storeFailure(requestedFavorite bool) ToggleResult {
	log.Printf("favorite_store_error requested_favorite=%t", requestedFavorite)
	return ToggleResult{
		Status:     "error",
		IsFavorite: !requestedFavorite,
		Message:    "Failed to update favorites",
	}
}

// IsFavorite answers the single-prospect lookup behind the follow button.
func (s *Service) IsFavorite(ctx context.Context, userID, prospectID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthorized
	}
	if prospectID == "" {
		return false, ErrInvalidRequest
	}

	doc, err := s.favorites.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return doc.IsFavorite(prospectID), nil
}

// List returns the user's favorite prospect IDs enriched with briefs from
// the stats API. A prospect the API cannot resolve is skipped, not fatal.
func (s *Service) List(ctx context.Context, userID string) (*ListResponse, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	doc, err := s.favorites.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &ListResponse{
		ProspectIDs: doc.Favorites,
		Prospects:   []domain.ProspectBrief{},
	}
	if resp.ProspectIDs == nil {
		resp.ProspectIDs = []string{}
	}

	if s.prospects == nil {
		return resp, nil
	}

	for _, id := range doc.Favorites {
		brief, err := s.prospects.GetBrief(ctx, id)
		if err != nil {
			log.Printf("favorite_brief_skip prospect_id=%s error=%q", id, err.Error())
			continue
		}
		resp.Prospects = append(resp.Prospects, *brief)
	}

	return resp, nil
}
