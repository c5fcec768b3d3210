package rating

import "prospecttrack/internal/domain"

// Broadcaster pushes a fresh rating summary to live subscribers after an
// accepted submission. Delivery is best effort; a failed push never fails
// the submission.
type Broadcaster interface {
	RatingUpdated(prospectID string, summary domain.RatingSummary)
}
