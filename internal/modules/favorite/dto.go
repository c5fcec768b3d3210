package favorite

import "prospecttrack/internal/domain"

// ToggleRequest carries the caller's last-known state of the follow button.
type ToggleRequest struct {
	CurrentlyFavorite bool `json:"currently_favorite"`
}

// ToggleResult is the outcome of a follow/unfollow. Status is "success" or
// "error"; IsFavorite is the state the caller should render.
type ToggleResult struct {
	Status     string `json:"status"`
	IsFavorite bool   `json:"is_favorite"`
	Message    string `json:"message"`
}

type CheckResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// ListResponse is the favorites page payload: the raw ID set plus whatever
// briefs the stats API could resolve.
type ListResponse struct {
	ProspectIDs []string               `json:"prospect_ids"`
	Prospects   []domain.ProspectBrief `json:"prospects"`
}
