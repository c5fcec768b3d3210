package domain

// ProspectBrief is the slice of the external stats API record the service
// actually renders: identity, bio line and draft position. The API is
// read-only for us; these fields are never written back.
type ProspectBrief struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	PrimaryPosition string `json:"primary_position,omitempty"`
	BatSide         string `json:"bat_side,omitempty"`
	PitchHand       string `json:"pitch_hand,omitempty"`
	Height          string `json:"height,omitempty"`
	Weight          int    `json:"weight,omitempty"`
	DraftYear       int    `json:"draft_year,omitempty"`
	PickRound       string `json:"pick_round,omitempty"`
	PickNumber      int    `json:"pick_number,omitempty"`
	TeamID          int    `json:"team_id,omitempty"`
	TeamName        string `json:"team_name,omitempty"`
	School          string `json:"school,omitempty"`
}
