//go:build e2e

package reservation_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/angelgmx/reservaIA/internal/domain/user"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	resdto "github.com/angelgmx/reservaIA/internal/handler/dto/response"
	"github.com/angelgmx/reservaIA/tests/common/builder"
	"github.com/angelgmx/reservaIA/tests/common/httptest"
	"github.com/angelgmx/reservaIA/tests/e2e"
	"github.com/angelgmx/reservaIA/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	setupRestaurantURL = "/api/restaurants"
	reservationsURL    = "/api/reservations"
)

type ReservationSuite struct {
	e2e.SharedSuite
	auth *helper.AuthHelper
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewAuthHelper(s.DB, s.Config.JWT)
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// ownerWithRestaurant registers an owner through the API and sets up a
// restaurant with the given capacity. Zero capacity means uncapped.
func (s *ReservationSuite) ownerWithRestaurant(t *testing.T, email string, capacity int32) (uuid.UUID, string) {
	t.Helper()

	_, token := s.auth.CreateAndLogin(t, s.Router, email, string(user.RoleCustomer))

	b := builder.NewRestaurantBuilder()
	if capacity > 0 {
		b.WithMaxCapacity(capacity)
	} else {
		b.AsUncapped()
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, setupRestaurantURL, b.BuildSetupRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	restaurantID, err := uuid.Parse(created["id"])
	require.NoError(t, err)

	// Setup promoted the account to owner; refresh the token so it carries
	// the new role.
	token = s.auth.LoginUser(t, s.Router, email, "password123")

	return restaurantID, token
}

func submitURL(restaurantID uuid.UUID) string {
	return "/api/public/restaurants/" + restaurantID.String() + "/reservations"
}

func (s *ReservationSuite) TestSubmitReservation() {
	s.Run("accepts a reservation and the owner sees it pending", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com", 40)

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID), reqBody, "")

		var created resdto.ReservationCreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "pending", created.Status)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var list []resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Len(t, list, 1)

		expected := resdto.ReservationResponse{
			ID:              created.ID,
			RestaurantID:    restaurantID,
			CustomerName:    reqBody.CustomerName,
			CustomerEmail:   reqBody.CustomerEmail,
			CustomerPhone:   reqBody.CustomerPhone,
			ReservationTime: reqBody.ReservationTime,
			NumberOfGuests:  int32(reqBody.NumberOfGuests),
			Status:          "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{},
				"ReservationDate", "SpecialRequests", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, list[0], opts...); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("lists reservations ordered by date then time", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com", 0)

		day1 := time.Now().AddDate(0, 0, 1)
		day2 := time.Now().AddDate(0, 0, 2)

		submitAt := func(date time.Time, timeOfDay string) uuid.UUID {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
				builder.NewReservationBuilder().WithDate(date).WithTime(timeOfDay).BuildCreateRequestDTO(), "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var created resdto.ReservationCreatedResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			return created.ID
		}

		// Submitted deliberately out of order; two share day1 13:00 so the
		// created_at tiebreak is exercised as well.
		d2Late := submitAt(day2, "20:30")
		d1Late := submitAt(day1, "21:00")
		d1First := submitAt(day1, "13:00")
		d2Early := submitAt(day2, "13:00")
		d1Second := submitAt(day1, "13:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var first []resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.Len(t, first, 5)

		gotIDs := make([]uuid.UUID, 0, len(first))
		for _, r := range first {
			gotIDs = append(gotIDs, r.ID)
		}
		wantIDs := []uuid.UUID{d1First, d1Second, d1Late, d2Early, d2Late}
		if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
			t.Errorf("listing order mismatch (-want +got):\n%s", diff)
		}

		// A second read returns the identical sequence.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var second []resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("listing is not stable across reads (-first +second):\n%s", diff)
		}
	})

	s.Run("rejects a reservation for an unknown restaurant", func() {
		t := s.T()

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(uuid.New()), reqBody, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("rejects a reservation in the past", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com", 40)

		reqBody := builder.NewReservationBuilder().AsPastDate().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID), reqBody, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("enforces the capacity limit per slot", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com", 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
			builder.NewReservationBuilder().WithGuests(6).BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code)

		// 6 + 5 would overflow the 10 seat slot.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
			builder.NewReservationBuilder().WithGuests(5).BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusConflict, w.Code)

		// A different slot the same evening is unaffected.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
			builder.NewReservationBuilder().WithGuests(5).WithTime("22:00").BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("admits exactly one of two concurrent overflowing requests", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com", 10)

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
					builder.NewReservationBuilder().WithGuests(6).BuildCreateRequestDTO(), "")
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var createdCount, conflictCount int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				createdCount++
			case http.StatusConflict:
				conflictCount++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, createdCount)
		require.Equal(t, 1, conflictCount)
	})

	s.Run("uncapped restaurants admit any party size", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com", 0)

		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
				builder.NewReservationBuilder().WithGuests(20).BuildCreateRequestDTO(), "")
			require.Equal(t, http.StatusCreated, w.Code)
		}
	})
}

func (s *ReservationSuite) TestUpdateReservationStatus() {
	statusURL := func(id uuid.UUID) string {
		return reservationsURL + "/" + id.String() + "/status"
	}

	submitOne := func(t *testing.T, restaurantID uuid.UUID, guests int) uuid.UUID {
		t.Helper()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
			builder.NewReservationBuilder().WithGuests(guests).BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.ReservationCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		return created.ID
	}

	s.Run("owner confirms a pending reservation", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com", 40)
		id := submitOne(t, restaurantID, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
			reqdto.UpdateReservationStatusRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated resdto.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "confirmed", updated.Status)
	})

	s.Run("cancelling frees the slot for new bookings", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com", 10)
		id := submitOne(t, restaurantID, 8)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
			builder.NewReservationBuilder().WithGuests(8).BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusConflict, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
			reqdto.UpdateReservationStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, submitURL(restaurantID),
			builder.NewReservationBuilder().WithGuests(8).BuildCreateRequestDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("cancelled reservations stay cancelled", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com", 40)
		id := submitOne(t, restaurantID, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
			reqdto.UpdateReservationStatusRequest{Status: "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
			reqdto.UpdateReservationStatusRequest{Status: "confirmed"}, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("concurrent cancel and confirm cannot resurrect the reservation", func() {
		t := s.T()

		restaurantID, token := s.ownerWithRestaurant(t, "owner@example.com", 0)

		for range 4 {
			id := submitOne(t, restaurantID, 4)

			codes := make(chan int, 2)
			var wg sync.WaitGroup
			for _, status := range []string{"cancelled", "confirmed"} {
				wg.Add(1)
				go func() {
					defer wg.Done()
					w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
						reqdto.UpdateReservationStatusRequest{Status: status}, token)
					codes <- w.Code
				}()
			}
			wg.Wait()
			close(codes)

			for code := range codes {
				require.Contains(t, []int{http.StatusOK, http.StatusConflict}, code)
			}

			// The row lock makes the loser re-read the committed status, so a
			// cancelled reservation can never end up confirmed.
			lw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?status=cancelled", nil, token)
			require.Equal(t, http.StatusOK, lw.Code)

			var cancelled []resdto.ReservationResponse
			require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &cancelled))
			found := false
			for _, r := range cancelled {
				if r.ID == id {
					found = true
				}
			}
			require.True(t, found, "reservation %s is no longer cancelled", id)
		}
	})

	s.Run("another owner cannot touch the reservation", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com", 40)
		id := submitOne(t, restaurantID, 4)

		_, intruderToken := s.ownerWithRestaurant(t, "intruso@example.com", 40)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
			reqdto.UpdateReservationStatusRequest{Status: "confirmed"}, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("customers cannot manage reservations", func() {
		t := s.T()

		restaurantID, _ := s.ownerWithRestaurant(t, "owner@example.com", 40)
		id := submitOne(t, restaurantID, 4)

		_, customerToken := s.auth.CreateAndLogin(t, s.Router, "cliente@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL(id),
			reqdto.UpdateReservationStatusRequest{Status: "confirmed"}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
