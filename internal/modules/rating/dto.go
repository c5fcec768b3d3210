package rating

// SubmitRequest is a star rating from the signed-in caller.
type SubmitRequest struct {
	Stars int `json:"stars" binding:"required,gte=1,lte=5"`
}

// SubmitResult is the outcome of a submission with the aggregates
// recomputed from the authoritative post-write sequence.
type SubmitResult struct {
	Status          string  `json:"status"`
	AverageRating   float64 `json:"average_rating"`
	RatingCount     int     `json:"rating_count"`
	TotalStarsGiven int     `json:"total_stars_given"`
	Message         string  `json:"message,omitempty"`
}

// SummaryResponse is the read-side aggregate for a prospect.
type SummaryResponse struct {
	ProspectID      string  `json:"prospect_id"`
	AverageRating   float64 `json:"average_rating"`
	RatingCount     int     `json:"rating_count"`
	TotalStarsGiven int     `json:"total_stars_given"`
}
