package api

import (
	"errors"
	"net/http"

	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/internal/infra/chatbot"
	"github.com/angelgmx/reservaIA/internal/usecase/chat"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// @Summary Ask the restaurant assistant
// @Description Ask the restaurant's virtual assistant a question
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.ChatRequest true "Question and prior turns"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /public/restaurants/{id}/chat [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid restaurant ID format",
		})
		return
	}

	var req reqdto.ChatRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	history := make([]chat.Turn, len(req.History))
	for i, m := range req.History {
		history[i] = chat.Turn{Role: m.Role, Content: m.Content}
	}

	reply, err := h.chatService.Ask(c.Request.Context(), restaurantID, req.Message, history)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Restaurant not found",
			})
		case errors.Is(err, chatbot.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Límite de uso alcanzado. Por favor, inténtalo de nuevo más tarde.",
			})
		case errors.Is(err, chatbot.ErrPaymentRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Servicio temporalmente no disponible.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ChatResponse{Reply: reply})
}
