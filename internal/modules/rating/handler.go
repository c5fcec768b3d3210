package rating

import (
	"errors"
	"net/http"

	"prospecttrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers the read side; anyone can see aggregates.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/prospects/:prospectId/ratings", h.GetSummary)
}

// RegisterProtectedRoutes registers the write side behind JWT auth.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/prospects/:prospectId/ratings", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	userID := c.GetString("user_id")
	prospectID := c.Param("prospectId")

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	result, err := h.service.Submit(c.Request.Context(), userID, prospectID, req.Stars)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Please sign in to submit a rating")
		case errors.Is(err, ErrDuplicateSubmission):
			// Informational, not a hard failure: the current aggregates ride
			// along so the client keeps rendering consistent numbers.
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"data":    result,
				"error": gin.H{
					"code":    response.CodeDuplicateRating,
					"message": result.Message,
				},
			})
		case errors.Is(err, ErrInvalidStars), errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Rating must be between 1 and 5 stars")
		default:
			response.Error(c, http.StatusServiceUnavailable, response.CodeStoreUnavailable, "Failed to save rating")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) GetSummary(c *gin.Context) {
	prospectID := c.Param("prospectId")

	summary, err := h.service.GetSummary(c.Request.Context(), prospectID)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid prospect id")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, response.CodeStoreUnavailable, "Failed to read ratings")
		return
	}

	response.Success(c, http.StatusOK, summary)
}
