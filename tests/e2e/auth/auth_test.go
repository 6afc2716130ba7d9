//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/angelgmx/reservaIA/internal/domain/user"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/tests/common/builder"
	"github.com/angelgmx/reservaIA/tests/common/dbtest"
	"github.com/angelgmx/reservaIA/tests/common/httptest"
	"github.com/angelgmx/reservaIA/tests/e2e"
	"github.com/angelgmx/reservaIA/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	meURL     = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
	auth *helper.AuthHelper
}

func (s *AuthSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewAuthHelper(s.DB, s.Config.JWT)
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestSignUp() {
	s.Run("registers a customer and returns a usable token", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("nuevo@example.com").BuildSignUpRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")

		var created resdto.AuthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEmpty(t, created.AccessToken)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, created.AccessToken)

		var me resdto.UserResponse
		httptest.AssertSuccessResponse(t, mw, http.StatusOK, &me)

		expected := &resdto.UserResponse{
			Email:       "nuevo@example.com",
			DisplayName: "Ángel García",
			Role:        string(user.RoleCustomer),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.UserResponse{}, "ID", "LastLogin", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &me, opts...); diff != "" {
			t.Errorf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("rejects an already registered email", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", string(user.RoleCustomer))

		reqBody := builder.NewUserBuilder().WithEmail("taken@example.com").BuildSignUpRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("rejects a weak password", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithPassword("short").BuildSignUpRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.NotEqual(t, http.StatusCreated, w.Code)
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("returns a token for valid credentials", func() {
		t := s.T()

		_, token := s.auth.CreateAndLogin(t, s.Router, "cliente@example.com", string(user.RoleCustomer))
		require.NotEmpty(t, token)
	})

	s.Run("rejects a wrong password", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "cliente@example.com", string(user.RoleCustomer))

		reqBody := builder.NewUserBuilder().WithEmail("cliente@example.com").WithPassword("wrong-password-1").BuildLoginRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects an unknown email", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("nadie@example.com").BuildLoginRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("requires a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects an expired token", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "caducado@example.com", string(user.RoleCustomer))
		token := s.auth.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
