package favorite

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

// RegisterRoutes registers favorites routes under the protected group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("/:prospectId", h.Follow)
		favorites.DELETE("/:prospectId", h.Unfollow)
		favorites.POST("/:prospectId/toggle", h.Toggle)
		favorites.GET("/:prospectId/check", h.Check)
	}
}

func (h *Handler) Follow(c *gin.Context) {
	userID := c.GetString("user_id")
	prospectID := c.Param("prospectId")

	result, err := h.service.Follow(c.Request.Context(), userID, prospectID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeToggleResult(c, result)
}

func (h *Handler) Unfollow(c *gin.Context) {
	userID := c.GetString("user_id")
	prospectID := c.Param("prospectId")

	result, err := h.service.Unfollow(c.Request.Context(), userID, prospectID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeToggleResult(c, result)
}

// Toggle keeps the old flip-style contract alive for clients that send
// their last-known button state.
func (h *Handler) Toggle(c *gin.Context) {
	userID := c.GetString("user_id")
	prospectID := c.Param("prospectId")

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
		return
	}

	result, err := h.service.Toggle(c.Request.Context(), userID, prospectID, req.CurrentlyFavorite)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeToggleResult(c, result)
}

func (h *Handler) Check(c *gin.Context) {
	userID := c.GetString("user_id")
	prospectID := c.Param("prospectId")

	isFavorite, err := h.service.IsFavorite(c.Request.Context(), userID, prospectID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CheckResponse{IsFavorite: isFavorite})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	list, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func writeToggleResult(c *gin.Context, result ToggleResult) {
	if result.Status == "error" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"data":    result,
			"error": gin.H{
				"code":    response.CodeStoreUnavailable,
				"message": result.Message,
			},
		})
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Sign in to follow prospects")
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid prospect id")
	default:
		response.Error(c, http.StatusServiceUnavailable, response.CodeStoreUnavailable, "Failed to read favorites")
	}
}
