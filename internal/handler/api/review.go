package api

import (
	"errors"
	"net/http"

	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/internal/usecase/commands"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Submit review
// @Description Leave a public review for a restaurant
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /public/restaurants/{id}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.reviewCommands.SubmitReview(c.Request.Context(), restaurantID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Restaurant not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ReviewCreatedResponse{ID: id})
}

// @Summary List reviews
// @Description List the public reviews of a restaurant, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /public/restaurants/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	views, err := h.reviewQueries.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Rating summary
// @Description Review count and average rating for a restaurant
// @Tags reviews
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /public/restaurants/{id}/reviews/summary [get]
func (h *ReviewHandler) GetRatingSummary(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	summary, err := h.reviewQueries.RatingSummary(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}
