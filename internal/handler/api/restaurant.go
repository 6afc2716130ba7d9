package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/internal/handler/middleware"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/usecase/commands"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestaurantHandler struct {
	restaurantCommands commands.RestaurantCommands
	restaurantQueries  queries.RestaurantQueries
}

func NewRestaurantHandler(
	restaurantCommands commands.RestaurantCommands,
	restaurantQueries queries.RestaurantQueries,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantCommands: restaurantCommands,
		restaurantQueries:  restaurantQueries,
	}
}

// @Summary Public restaurant profile
// @Description Get the public booking-page profile of a restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.PublicRestaurantResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /public/restaurants/{id} [get]
func (h *RestaurantHandler) GetPublicProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	view, err := h.restaurantQueries.GetPublicProfile(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromPublicRestaurantView(view))
}

// @Summary Set up restaurant
// @Description Create the authenticated user's restaurant and promote the account to owner
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetupRestaurantRequest true "Restaurant setup"
// @Success 201 {object} resdto.RestaurantCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /restaurants [post]
func (h *RestaurantHandler) Setup(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetupRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.restaurantCommands.Setup(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRestaurantAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Owner already has a restaurant",
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

	c.JSON(http.StatusCreated, resdto.RestaurantCreatedResponse{ID: id})
}

// @Summary My restaurant
// @Description Get the owner's restaurant with all editable fields
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/me [get]
func (h *RestaurantHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.restaurantQueries.GetByOwner(c.Request.Context(), userID)
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

	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Update restaurant profile
// @Description Replace the owner's restaurant profile fields
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateRestaurantProfileRequest true "Profile update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /restaurants/me [put]
func (h *RestaurantHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateRestaurantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.restaurantCommands.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update branding
// @Description Update logo and theme colors
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateBrandingRequest true "Branding update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /restaurants/me/branding [patch]
func (h *RestaurantHandler) UpdateBranding(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.restaurantCommands.UpdateBranding(c.Request.Context(), userID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add gallery photo
// @Description Append a photo URL to the restaurant gallery
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddGalleryPhotoRequest true "Photo URL"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/me/gallery [post]
func (h *RestaurantHandler) AddGalleryPhoto(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddGalleryPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.restaurantCommands.AddGalleryPhoto(c.Request.Context(), userID, req.URL); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove gallery photo
// @Description Remove a photo from the gallery by position
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param index path int true "Photo index"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/me/gallery/{index} [delete]
func (h *RestaurantHandler) RemoveGalleryPhoto(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid photo index",
		})
		return
	}

	if err := h.restaurantCommands.RemoveGalleryPhoto(c.Request.Context(), userID, index); err != nil {
		if errors.Is(err, commands.ErrGalleryPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gallery photo not found",
			})
			return
		}
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update chatbot context
// @Description Update the free-text fields the assistant answers from
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateChatbotContextRequest true "Chatbot context"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /restaurants/me/chatbot-context [patch]
func (h *RestaurantHandler) UpdateChatbotContext(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateChatbotContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.restaurantCommands.UpdateChatbotContext(c.Request.Context(), userID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RestaurantHandler) respondCommandError(c *gin.Context, err error) {
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
}
