package prospect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"prospecttrack/internal/domain"
)

// Service is the read-only client for the external stats API. It never
// writes to the API and holds no state beyond the HTTP client.
type Service struct {
	baseURL string
	http    *http.Client
}

func NewService(baseURL string, client *http.Client) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{baseURL: baseURL, http: client}
}

// ListProspects fetches the draft prospect list for a year, truncated to
// limit when limit > 0.
func (s *Service) ListProspects(ctx context.Context, year, limit int) ([]domain.ProspectBrief, error) {
	if year < 1965 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	var payload prospectsResponse
	url := fmt.Sprintf("%s/api/v1/draft/prospects/%d", s.baseURL, year)
	if err := s.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	picks := payload.Prospects
	if limit > 0 && len(picks) > limit {
		picks = picks[:limit]
	}

	briefs := make([]domain.ProspectBrief, 0, len(picks))
	for _, pick := range picks {
		briefs = append(briefs, pickToBrief(pick))
	}
	return briefs, nil
}

// GetBrief resolves one prospect the way the favorites page does: person
// record first, then the draft pick for the person's draft year.
func (s *Service) GetBrief(ctx context.Context, prospectID string) (*domain.ProspectBrief, error) {
	p, err := s.getPerson(ctx, prospectID)
	if err != nil {
		return nil, err
	}

	brief := personToBrief(*p)

	if p.DraftYear > 0 {
		pick, err := s.getDraftPick(ctx, p.DraftYear, prospectID)
		if err == nil && pick != nil {
			brief.PickRound = pick.PickRound
			brief.PickNumber = pick.PickNumber
			brief.TeamID = pick.Team.ID
			brief.TeamName = pick.Team.Name
			brief.School = pick.School.Name
		}
	}

	return &brief, nil
}

func (s *Service) getPerson(ctx context.Context, prospectID string) (*person, error) {
	var payload personResponse
	url := fmt.Sprintf("%s/api/v1/people/%s", s.baseURL, prospectID)
	if err := s.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	if len(payload.People) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, prospectID)
	}
	return &payload.People[0], nil
}

func (s *Service) getDraftPick(ctx context.Context, year int, prospectID string) (*draftPick, error) {
	var payload draftResponse
	url := fmt.Sprintf("%s/api/v1/draft/%d?playerId=%s", s.baseURL, year, prospectID)
	if err := s.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	for _, round := range payload.Drafts.Rounds {
		if len(round.Picks) > 0 {
			return &round.Picks[0], nil
		}
	}
	return nil, fmt.Errorf("%w: no draft pick for %s in %d", ErrNotFound, prospectID, year)
}

func (s *Service) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return nil
}

func personToBrief(p person) domain.ProspectBrief {
	return domain.ProspectBrief{
		ID:              strconv.Itoa(p.ID),
		FullName:        p.FullName,
		PrimaryPosition: p.PrimaryPosition.Abbreviation,
		BatSide:         p.BatSide.Code,
		PitchHand:       p.PitchHand.Code,
		Height:          p.Height,
		Weight:          p.Weight,
		DraftYear:       p.DraftYear,
	}
}

func pickToBrief(pick draftPick) domain.ProspectBrief {
	brief := personToBrief(pick.Person)
	brief.PickRound = pick.PickRound
	brief.PickNumber = pick.PickNumber
	brief.TeamID = pick.Team.ID
	brief.TeamName = pick.Team.Name
	brief.School = pick.School.Name
	return brief
}
