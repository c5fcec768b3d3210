package prospect

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsAPIStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/people/800050", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"people":[{
			"id":800050,"fullName":"Top Prospect","height":"6' 2\"","weight":195,
			"draftYear":2024,
			"primaryPosition":{"abbreviation":"SS"},
			"batSide":{"code":"R"},"pitchHand":{"code":"R"}
		}]}`)
	})
	mux.HandleFunc("/api/v1/people/999999", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"people":[]}`)
	})
	mux.HandleFunc("/api/v1/draft/2024", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("playerId") != "800050" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"drafts":{"rounds":[{"picks":[{
			"person":{"id":800050,"fullName":"Top Prospect"},
			"pickRound":"1","pickNumber":3,
			"team":{"id":120,"name":"Washington Nationals"},
			"school":{"name":"Some University"}
		}]}]}}`)
	})
	mux.HandleFunc("/api/v1/draft/prospects/2024", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"prospects":[
			{"person":{"id":800050,"fullName":"Top Prospect"},"pickNumber":3,"team":{"id":120,"name":"Washington Nationals"}},
			{"person":{"id":800051,"fullName":"Second Prospect"},"pickNumber":7,"team":{"id":110,"name":"Baltimore Orioles"}},
			{"person":{"id":800052,"fullName":"Third Prospect"},"pickNumber":12,"team":{"id":121,"name":"New York Mets"}}
		]}`)
	})

	return httptest.NewServer(mux)
}

func TestListProspectsAppliesLimit(t *testing.T) {
	server := newStatsAPIStub(t)
	defer server.Close()
	svc := NewService(server.URL, server.Client())

	briefs, err := svc.ListProspects(context.Background(), 2024, 2)
	require.NoError(t, err)
	require.Len(t, briefs, 2)
	assert.Equal(t, "800050", briefs[0].ID)
	assert.Equal(t, "Top Prospect", briefs[0].FullName)
	assert.Equal(t, "Washington Nationals", briefs[0].TeamName)
}

func TestListProspectsRejectsBogusYear(t *testing.T) {
	svc := NewService("http://unused", nil)

	_, err := svc.ListProspects(context.Background(), 1776, 10)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestGetBriefResolvesPersonAndDraftPick(t *testing.T) {
	server := newStatsAPIStub(t)
	defer server.Close()
	svc := NewService(server.URL, server.Client())

	brief, err := svc.GetBrief(context.Background(), "800050")
	require.NoError(t, err)

	assert.Equal(t, "800050", brief.ID)
	assert.Equal(t, "Top Prospect", brief.FullName)
	assert.Equal(t, "SS", brief.PrimaryPosition)
	assert.Equal(t, 2024, brief.DraftYear)
	assert.Equal(t, "1", brief.PickRound)
	assert.Equal(t, 3, brief.PickNumber)
	assert.Equal(t, "Washington Nationals", brief.TeamName)
	assert.Equal(t, "Some University", brief.School)
}

func TestGetBriefUnknownPerson(t *testing.T) {
	server := newStatsAPIStub(t)
	defer server.Close()
	svc := NewService(server.URL, server.Client())

	_, err := svc.GetBrief(context.Background(), "999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpstreamErrorSurfacedAsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	svc := NewService(server.URL, server.Client())

	_, err := svc.GetBrief(context.Background(), "800050")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
