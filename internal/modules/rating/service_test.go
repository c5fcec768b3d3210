package rating

import (
	"context"
	"errors"
	"sync"
	"testing"

	"prospecttrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRatingRepo mimics the store's conflict-free set-union append: the
// whole append runs under one lock and a duplicate value is a no-op, so
// concurrent distinct appends both survive.
type memRatingRepo struct {
	mu        sync.Mutex
	docs      map[string][]int
	failReads bool
	failWrite bool
	getCalls  int
	appends   int
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{docs: make(map[string][]int)}
}

func (m *memRatingRepo) GetByProspectID(ctx context.Context, prospectID string) (*domain.ProspectRatings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.failReads {
		return nil, errors.New("store unreachable")
	}
	return &domain.ProspectRatings{
		ProspectID: prospectID,
		Ratings:    append([]int{}, m.docs[prospectID]...),
	}, nil
}

func (m *memRatingRepo) Append(ctx context.Context, prospectID string, stars int) (*domain.ProspectRatings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return nil, errors.New("store unreachable")
	}
	m.appends++

	present := false
	for _, v := range m.docs[prospectID] {
		if v == stars {
			present = true
			break
		}
	}
	if !present {
		m.docs[prospectID] = append(m.docs[prospectID], stars)
	}

	return &domain.ProspectRatings{
		ProspectID: prospectID,
		Ratings:    append([]int{}, m.docs[prospectID]...),
	}, nil
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []domain.RatingSummary
}

func (b *recordingBroadcaster) RatingUpdated(prospectID string, summary domain.RatingSummary) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, summary)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

func TestSubmitFirstRatingInitializesDocument(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)

	result, err := svc.Submit(context.Background(), "user-1", "p1", 4)
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 1, result.RatingCount)
	assert.Equal(t, 4, result.TotalStarsGiven)
	assert.InDelta(t, 4.0, result.AverageRating, 1e-9)
}

func TestSubmitAggregatesAcrossDistinctValues(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	var result SubmitResult
	var err error
	for _, stars := range []int{4, 5, 3} {
		result, err = svc.Submit(ctx, "user-1", "p1", stars)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, result.RatingCount)
	assert.Equal(t, 12, result.TotalStarsGiven)
	assert.InDelta(t, 4.0, result.AverageRating, 1e-9)
}

func TestDuplicateValueRejectedWithoutMutation(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user-1", "p1", 5)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, "user-2", "p1", 5)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
	assert.Equal(t, "duplicate", result.Status)
	assert.NotEmpty(t, result.Message)

	// Exactly one 5 recorded and no second append attempted.
	assert.Equal(t, []int{5}, repo.docs["p1"])
	assert.Equal(t, 1, repo.appends)
	// The rejection still reports the unchanged aggregate.
	assert.Equal(t, 1, result.RatingCount)
	assert.Equal(t, 5, result.TotalStarsGiven)
}

func TestUnauthenticatedSubmissionNeverTouchesStore(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), "", "p1", 4)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, repo.getCalls)
	assert.Zero(t, repo.appends)
}

func TestInvalidStarsRejectedBeforeStore(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)

	for _, stars := range []int{0, 6, -1} {
		_, err := svc.Submit(context.Background(), "user-1", "p1", stars)
		assert.ErrorIs(t, err, ErrInvalidStars)
	}
	assert.Zero(t, repo.appends)
}

func TestConcurrentDistinctSubmissionsBothSurvive(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)

	var wg sync.WaitGroup
	for _, stars := range []int{3, 5} {
		wg.Add(1)
		go func(stars int) {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), "user-1", "p1", stars)
			assert.NoError(t, err)
		}(stars)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{3, 5}, repo.docs["p1"])

	summary, err := svc.GetSummary(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RatingCount)
	assert.Equal(t, 8, summary.TotalStarsGiven)
	assert.InDelta(t, 4.0, summary.AverageRating, 1e-9)
}

func TestStoreFailureLeavesNoPartialState(t *testing.T) {
	repo := newMemRatingRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user-1", "p1", 4)
	require.NoError(t, err)

	repo.failWrite = true
	_, err = svc.Submit(ctx, "user-1", "p1", 2)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	repo.failWrite = false
	summary, err := svc.GetSummary(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RatingCount)
	assert.Equal(t, 4, summary.TotalStarsGiven)
}

func TestSummaryZeroWhenUnrated(t *testing.T) {
	svc := NewService(newMemRatingRepo(), nil)

	summary, err := svc.GetSummary(context.Background(), "p-nobody")
	require.NoError(t, err)
	assert.Zero(t, summary.RatingCount)
	assert.Zero(t, summary.TotalStarsGiven)
	assert.Zero(t, summary.AverageRating)
}

func TestBroadcastOnlyOnAcceptedSubmission(t *testing.T) {
	repo := newMemRatingRepo()
	hub := &recordingBroadcaster{}
	svc := NewService(repo, hub)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user-1", "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 1, hub.count())

	_, err = svc.Submit(ctx, "user-2", "p1", 4)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
	assert.Equal(t, 1, hub.count())

	_, err = svc.Submit(ctx, "", "p1", 3)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, 1, hub.count())
}
