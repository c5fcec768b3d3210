package rating

import (
	"context"
	"fmt"

	"prospecttrack/internal/repository"
)

// Service appends star ratings to the per-prospect sequence and derives
// the aggregates. It holds no state of its own; the document store is the
// single source of truth after every write.
type Service struct {
	ratings repository.RatingRepository
	live    Broadcaster
}

func NewService(ratings repository.RatingRepository, live Broadcaster) *Service {
	return &Service{ratings: ratings, live: live}
}

// Submit records one star rating for a prospect.
//
// The identity check runs before any store access. A star value already in
// the sequence is rejected as a duplicate without mutating the document;
// the store's set-union append enforces the same rule under concurrency,
// so a racing identical value can never be double-counted. All aggregates
// are recomputed from the post-write sequence rather than carried across
// calls.
func (s *Service) Submit(ctx context.Context, userID, prospectID string, stars int) (SubmitResult, error) {
	if userID == "" {
		return SubmitResult{}, ErrUnauthenticated
	}
	if prospectID == "" {
		return SubmitResult{}, ErrInvalidRequest
	}
	if stars < 1 || stars > 5 {
		return SubmitResult{}, fmt.Errorf("%w: %d", ErrInvalidStars, stars)
	}

	current, err := s.ratings.GetByProspectID(ctx, prospectID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if current.Contains(stars) {
		summary := current.Summary()
		return SubmitResult{
			Status:          "duplicate",
			AverageRating:   summary.Average,
			RatingCount:     summary.Count,
			TotalStarsGiven: summary.TotalStars,
			Message:         fmt.Sprintf("A %d-star rating is already recorded for this prospect", stars),
		}, ErrDuplicateSubmission
	}

	updated, err := s.ratings.Append(ctx, prospectID, stars)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	summary := updated.Summary()
	if s.live != nil {
		s.live.RatingUpdated(prospectID, summary)
	}

	return SubmitResult{
		Status:          "success",
		AverageRating:   summary.Average,
		RatingCount:     summary.Count,
		TotalStarsGiven: summary.TotalStars,
		Message:         "Thanks for rating!",
	}, nil
}

// GetSummary returns the derived aggregates for a prospect. A prospect
// nobody has rated yet yields a zero summary, not an error.
func (s *Service) GetSummary(ctx context.Context, prospectID string) (SummaryResponse, error) {
	if prospectID == "" {
		return SummaryResponse{}, ErrInvalidRequest
	}

	doc, err := s.ratings.GetByProspectID(ctx, prospectID)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	summary := doc.Summary()
	return SummaryResponse{
		ProspectID:      prospectID,
		AverageRating:   summary.Average,
		RatingCount:     summary.Count,
		TotalStarsGiven: summary.TotalStars,
	}, nil
}
