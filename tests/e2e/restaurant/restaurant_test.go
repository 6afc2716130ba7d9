//go:build e2e

package restaurant_test

import (
	"net/http"
	"testing"

	"github.com/angelgmx/reservaIA/internal/domain/user"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/tests/common/builder"
	"github.com/angelgmx/reservaIA/tests/common/httptest"
	"github.com/angelgmx/reservaIA/tests/e2e"
	"github.com/angelgmx/reservaIA/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	setupRestaurantURL = "/api/restaurants"
	myRestaurantURL    = "/api/restaurants/me"
	menuURL            = "/api/menu"
)

type RestaurantSuite struct {
	e2e.SharedSuite
	auth *helper.AuthHelper
}

func (s *RestaurantSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewAuthHelper(s.DB, s.Config.JWT)
}

func TestRestaurantSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RestaurantSuite))
}

func (s *RestaurantSuite) ownerWithRestaurant(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	_, token := s.auth.CreateAndLogin(t, s.Router, email, string(user.RoleCustomer))

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, setupRestaurantURL,
		builder.NewRestaurantBuilder().BuildSetupRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.RestaurantCreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	return created.ID, s.auth.LoginUser(t, s.Router, email, "password123")
}

func publicURL(restaurantID uuid.UUID, suffix string) string {
	return "/api/public/restaurants/" + restaurantID.String() + suffix
}

func (s *RestaurantSuite) TestSetupAndProfile() {
	s.Run("setup exposes a public profile and promotes the owner", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL(restaurantID, ""), nil, "")

		var profile resdto.PublicRestaurantResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		require.Equal(t, "Casa Pepe", profile.Name)
		require.Equal(t, "Sevilla", profile.City)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, myRestaurantURL, nil, token)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())
	})

	s.Run("a second restaurant for the same owner is rejected", func() {
		t := s.T()

		_, token := s.ownerWithRestaurant(t, "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, setupRestaurantURL,
			builder.NewRestaurantBuilder().WithName("Sucursal").BuildSetupRequestDTO(), token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("owner updates branding and it shows publicly", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com")

		primary := "#FF5733"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, myRestaurantURL+"/branding",
			reqdto.UpdateBrandingRequest{PrimaryColor: &primary}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL(restaurantID, ""), nil, "")

		var profile resdto.PublicRestaurantResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &profile)
		require.NotNil(t, profile.PrimaryColor)
		require.Equal(t, primary, *profile.PrimaryColor)
	})
}

func (s *RestaurantSuite) TestMenu() {
	s.Run("published items appear on the public menu, unavailable ones do not", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, menuURL,
			builder.NewMenuItemBuilder().BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.MenuItemCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// Hide it and check the public menu no longer lists it.
		update := builder.NewMenuItemBuilder().AsUnavailable().BuildUpdateRequestDTO()
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, menuURL+"/"+created.ID.String(), update, token)
		require.Equal(t, http.StatusNoContent, uw.Code, uw.Body.String())

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL(restaurantID, "/menu"), nil, "")
		require.Equal(t, http.StatusOK, pw.Code)

		var publicMenu []resdto.MenuItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &publicMenu))
		require.Empty(t, publicMenu)

		// The owner dashboard still sees it.
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, menuURL, nil, token)
		require.Equal(t, http.StatusOK, ow.Code)

		var ownerMenu []resdto.MenuItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &ownerMenu))
		require.Len(t, ownerMenu, 1)
	})

	s.Run("deleting an item removes it everywhere", func() {
		t := s.T()

		_, token := s.ownerWithRestaurant(t, "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, menuURL,
			builder.NewMenuItemBuilder().BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created resdto.MenuItemCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, menuURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, menuURL, nil, token)
		require.Equal(t, http.StatusOK, ow.Code)

		var ownerMenu []resdto.MenuItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &ownerMenu))
		require.Empty(t, ownerMenu)
	})

	s.Run("customers cannot manage the menu", func() {
		t := s.T()

		_, token := s.auth.CreateAndLogin(t, s.Router, "cliente@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, menuURL,
			builder.NewMenuItemBuilder().BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *RestaurantSuite) TestReviews() {
	s.Run("reviews aggregate into the rating summary", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com")

		for _, rating := range []int{5, 4} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicURL(restaurantID, "/reviews"),
				builder.NewReviewBuilder().WithRating(rating).BuildCreateRequestDTO(), "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL(restaurantID, "/reviews"), nil, "")
		require.Equal(t, http.StatusOK, lw.Code)

		var reviews []resdto.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &reviews))
		require.Len(t, reviews, 2)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL(restaurantID, "/reviews/summary"), nil, "")

		var summary resdto.RatingSummaryResponse
		httptest.AssertSuccessResponse(t, sw, http.StatusOK, &summary)
		require.Equal(t, int64(2), summary.TotalReviews)
		require.InDelta(t, 4.5, summary.AverageRating, 0.01)
	})

	s.Run("out of range ratings are rejected", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, publicURL(restaurantID, "/reviews"),
			builder.NewReviewBuilder().WithRating(6).BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
