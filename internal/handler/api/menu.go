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

type MenuHandler struct {
	menuCommands commands.MenuCommands
	menuQueries  queries.MenuQueries
	commandReads shared.CommandReads
}

func NewMenuHandler(
	menuCommands commands.MenuCommands,
	menuQueries queries.MenuQueries,
	commandReads shared.CommandReads,
) *MenuHandler {
	return &MenuHandler{
		menuCommands: menuCommands,
		menuQueries:  menuQueries,
		commandReads: commandReads,
	}
}

// @Summary Public menu
// @Description List the available menu items of a restaurant
// @Tags menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Router /public/restaurants/{id}/menu [get]
func (h *MenuHandler) GetPublicMenu(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	views, err := h.menuQueries.ListAvailableByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemViews(views))
}

// @Summary List menu items
// @Description List every item of the owner's menu, including unavailable ones
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu [get]
func (h *MenuHandler) ListItems(c *gin.Context) {
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

	views, err := h.menuQueries.ListByRestaurant(c.Request.Context(), rest.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemViews(views))
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /menu [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.menuCommands.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.MenuItemCreatedResponse{ID: id})
}

// @Summary Update menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Menu item"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /menu/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.menuCommands.UpdateItem(c.Request.Context(), userID, itemID, req); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	if err := h.menuCommands.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Restaurant not found",
		})
	case errors.Is(err, commands.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found",
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
