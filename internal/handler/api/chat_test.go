//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/angelgmx/reservaIA/internal/handler/api"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/infra/chatbot"
	"github.com/angelgmx/reservaIA/internal/usecase/chat"
	"github.com/angelgmx/reservaIA/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubChatService struct {
	reply       string
	err         error
	gotMessage  string
	gotHistory  []chat.Turn
	gotRestID   uuid.UUID
	timesCalled int
}

func (s *stubChatService) Ask(_ context.Context, restaurantID uuid.UUID, message string, history []chat.Turn) (string, error) {
	s.timesCalled++
	s.gotRestID = restaurantID
	s.gotMessage = message
	s.gotHistory = history
	return s.reply, s.err
}

type ChatHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	service *stubChatService
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.service = &stubChatService{reply: "¡Hola! ¿En qué puedo ayudarte?"}
	handler := api.NewChatHandler(s.service)
	s.router.POST("/public/restaurants/:id/chat", handler.Ask)
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) TestAsk() {
	restaurantID := uuid.New()
	url := "/public/restaurants/" + restaurantID.String() + "/chat"
	reqBody := reqdto.ChatRequest{
		Message: "¿Hasta qué hora servís cenas?",
		History: []reqdto.ChatMessage{
			{Role: "user", Content: "Hola"},
			{Role: "assistant", Content: "¡Hola! ¿En qué puedo ayudarte?"},
		},
	}

	s.Run("relays the question with its history", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.service.reply, body["reply"])
		s.Equal(restaurantID, s.service.gotRestID)
		s.Equal(reqBody.Message, s.service.gotMessage)
		s.Require().Len(s.service.gotHistory, 2)
		s.Equal(chat.Turn{Role: "user", Content: "Hola"}, s.service.gotHistory[0])
	})

	s.Run("returns 400 on malformed restaurant id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/public/restaurants/not-a-uuid/chat", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant ID")
	})

	s.Run("returns 400 on binding errors", func() {
		cases := []struct {
			name string
			body any
		}{
			{name: "missing message", body: map[string]any{}},
			{name: "history with unknown role", body: map[string]any{
				"message": "hola",
				"history": []map[string]string{{"role": "system", "content": "x"}},
			}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("returns 404 for an unknown restaurant", func() {
		s.service.err = chat.ErrRestaurantNotFound
		defer func() { s.service.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Restaurant not found")
	})

	s.Run("surfaces gateway rate limiting with its own message", func() {
		s.service.err = chatbot.ErrRateLimited
		defer func() { s.service.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Límite de uso alcanzado")
	})

	s.Run("surfaces exhausted credits as service unavailable", func() {
		s.service.err = chatbot.ErrPaymentRequired
		defer func() { s.service.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Servicio temporalmente no disponible")
	})

	s.Run("other gateway failures are internal errors", func() {
		s.service.err = chatbot.ErrGatewayFailure
		defer func() { s.service.err = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
