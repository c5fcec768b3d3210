package domain

// ProspectRatings is the per-prospect document in the `prospects` collection.
// Ratings holds one accepted star value per submission; all aggregates are
// derived from it on read and never stored separately.
type ProspectRatings struct {
	ProspectID string `bson:"_id" json:"prospect_id"`
	Ratings    []int  `bson:"ratings" json:"ratings"`
}

// RatingSummary is the derived view of a ratings sequence.
type RatingSummary struct {
	Average    float64 `json:"average_rating"`
	Count      int     `json:"rating_count"`
	TotalStars int     `json:"total_stars_given"`
}

// Summary recomputes count, average and total from the sequence. An empty
// sequence yields a zero average.
func (p *ProspectRatings) Summary() RatingSummary {
	if p == nil || len(p.Ratings) == 0 {
		return RatingSummary{}
	}
	total := 0
	for _, stars := range p.Ratings {
		total += stars
	}
	return RatingSummary{
		Average:    float64(total) / float64(len(p.Ratings)),
		Count:      len(p.Ratings),
		TotalStars: total,
	}
}

// Contains reports whether the sequence already holds the given value.
func (p *ProspectRatings) Contains(stars int) bool {
	if p == nil {
		return false
	}
	for _, v := range p.Ratings {
		if v == stars {
			return true
		}
	}
	return false
}
