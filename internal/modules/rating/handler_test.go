package rating

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(repo *memRatingRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(repo, nil))

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	handler.RegisterProtectedRoutes(protected)
	return router
}

func TestSubmitEndpointCreatesRating(t *testing.T) {
	repo := newMemRatingRepo()
	router := newTestRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/prospects/p1/ratings", strings.NewReader(`{"stars":4}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"rating_count":1`)
	assert.Contains(t, w.Body.String(), `"total_stars_given":4`)
}

func TestSubmitEndpointRejectsAnonymous(t *testing.T) {
	repo := newMemRatingRepo()
	router := newTestRouter(repo, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/prospects/p1/ratings", strings.NewReader(`{"stars":4}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, repo.appends)
}

func TestSubmitEndpointDuplicateConflict(t *testing.T) {
	repo := newMemRatingRepo()
	repo.docs["p1"] = []int{5}
	router := newTestRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/prospects/p1/ratings", strings.NewReader(`{"stars":5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_RATING")
	assert.Equal(t, []int{5}, repo.docs["p1"])
}

func TestSubmitEndpointValidatesStars(t *testing.T) {
	router := newTestRouter(newMemRatingRepo(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/prospects/p1/ratings", strings.NewReader(`{"stars":9}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	repo := newMemRatingRepo()
	repo.docs["p1"] = []int{4, 5, 3}
	router := newTestRouter(repo, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/prospects/p1/ratings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rating_count":3`)
	assert.Contains(t, w.Body.String(), `"average_rating":4`)
}
