package prospect

// Wire shapes for the slices of the stats API the service reads. The API
// schema is fixed and external; only the fields used downstream are mapped.

type personResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID              int      `json:"id"`
	FullName        string   `json:"fullName"`
	Height          string   `json:"height"`
	Weight          int      `json:"weight"`
	DraftYear       int      `json:"draftYear"`
	PrimaryPosition codeName `json:"primaryPosition"`
	BatSide         codeName `json:"batSide"`
	PitchHand       codeName `json:"pitchHand"`
}

type codeName struct {
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

type draftResponse struct {
	Drafts draftRounds `json:"drafts"`
}

type draftRounds struct {
	Rounds []draftRound `json:"rounds"`
}

type draftRound struct {
	Picks []draftPick `json:"picks"`
}

type draftPick struct {
	Person     person   `json:"person"`
	PickRound  string   `json:"pickRound"`
	PickNumber int      `json:"pickNumber"`
	Team       teamInfo `json:"team"`
	School     school   `json:"school"`
}

type teamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type school struct {
	Name string `json:"name"`
}

type prospectsResponse struct {
	Prospects []draftPick `json:"prospects"`
}
