//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"github.com/angelgmx/reservaIA/internal/domain/user"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/pkg/config"
	"github.com/angelgmx/reservaIA/internal/pkg/jwt"
	"github.com/angelgmx/reservaIA/tests/common/dbtest"
	"github.com/angelgmx/reservaIA/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// AuthHelper creates accounts directly in the database and logs them in
// through the API, so suites exercise the real token path.
type AuthHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewAuthHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *AuthHelper {
	return &AuthHelper{pool: pool, cfg: cfg}
}

func (h *AuthHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken, "access token missing from login response")

	return body.AccessToken
}

func (h *AuthHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, h.pool, email, role)
	return userID, h.LoginUser(t, router, email, "password123")
}

func (h *AuthHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.Duration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *AuthHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
