package prospect

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"prospecttrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public prospect browse routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	prospects := rg.Group("/prospects")
	{
		prospects.GET("", h.List)
		prospects.GET("/:prospectId", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	if limit < 1 || limit > 200 {
		limit = 50
	}

	briefs, err := h.service.ListProspects(c.Request.Context(), year, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidYear) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid draft year")
			return
		}
		response.Error(c, http.StatusBadGateway, response.CodeUpstream, "Failed to fetch prospects")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"prospects": briefs, "year": year})
}

func (h *Handler) Get(c *gin.Context) {
	prospectID := c.Param("prospectId")

	brief, err := h.service.GetBrief(c.Request.Context(), prospectID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Prospect not found")
			return
		}
		response.Error(c, http.StatusBadGateway, response.CodeUpstream, "Failed to fetch prospect")
		return
	}

	response.Success(c, http.StatusOK, brief)
}
