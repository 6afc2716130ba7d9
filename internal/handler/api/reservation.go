package api

import (
	"errors"
	"net/http"

	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/internal/handler/middleware"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/usecase/commands"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
	commandReads        shared.CommandReads
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
	commandReads shared.CommandReads,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
		commandReads:        commandReads,
	}
}

// @Summary Submit reservation
// @Description Submit a reservation request for a restaurant's public booking page
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /public/restaurants/{id}/reservations [post]
func (h *ReservationHandler) SubmitReservation(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.reservationCommands.SubmitReservation(c.Request.Context(), restaurantID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Restaurant not found",
			})
		case errors.Is(err, commands.ErrRestaurantInactive):
			// An inactive restaurant fails intake the same way a bad date or
			// guest count does.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Restaurant is not accepting reservations",
			})
		case errors.Is(err, commands.ErrCapacityExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No capacity left for the requested time",
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

	c.JSON(http.StatusCreated, resdto.ReservationCreatedResponse{
		ID:     id,
		Status: "pending",
	})
}

// @Summary List reservations
// @Description List the reservations of the owner's restaurant, optionally filtered by status
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rest, err := h.commandReads.RestaurantByOwner(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Restaurant not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var views []*queries.ReservationView
	if status := c.Query("status"); status != "" {
		views, err = h.reservationQueries.ListByRestaurantAndStatus(c.Request.Context(), rest.ID, status)
	} else {
		views, err = h.reservationQueries.ListByRestaurant(c.Request.Context(), rest.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Update reservation status
// @Description Confirm or cancel a reservation of the owner's restaurant
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "Status update"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.UpdateReservationStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.reservationCommands.UpdateStatus(c.Request.Context(), userID, reservationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotRestaurantOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), reservationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
