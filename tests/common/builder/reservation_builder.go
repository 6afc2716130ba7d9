//go:build unit || e2e

package builder

import (
	"time"

	domres "github.com/angelgmx/reservaIA/internal/domain/reservation"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/pkg/clock"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RestaurantID    uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            time.Time
	Time            string
	NumberOfGuests  int
	SpecialRequests *string
	Status          string
	Now             time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		RestaurantID:   uuid.New(),
		CustomerName:   "Ana López",
		CustomerEmail:  "ana.lopez@example.com",
		CustomerPhone:  "+34 600 123 456",
		Date:           now.AddDate(0, 0, 7),
		Time:           "20:30",
		NumberOfGuests: 4,
		Status:         string(domres.StatusPending),
		Now:            now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildIntake() domres.Intake {
	return domres.Intake{
		RestaurantID:    b.RestaurantID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		Date:            b.Date,
		Time:            b.Time,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	factory := domres.NewFactory(clock.NewMockClock(b.Now))
	return factory.CreateReservation(b.BuildIntake())
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		ReservationDate: b.Date.Format("2006-01-02"),
		ReservationTime: b.Time,
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:              uuid.New(),
		RestaurantID:    b.RestaurantID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		ReservationDate: b.Date.Truncate(24 * time.Hour),
		ReservationTime: b.Time,
		NumberOfGuests:  int32(b.NumberOfGuests),
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithRestaurantID(id uuid.UUID) *ReservationBuilder {
	b.RestaurantID = id
	return b
}

func (b *ReservationBuilder) WithCustomerName(name string) *ReservationBuilder {
	b.CustomerName = name
	return b
}

func (b *ReservationBuilder) WithCustomerEmail(email string) *ReservationBuilder {
	b.CustomerEmail = email
	return b
}

func (b *ReservationBuilder) WithCustomerPhone(phone string) *ReservationBuilder {
	b.CustomerPhone = phone
	return b
}

func (b *ReservationBuilder) WithDate(date time.Time) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithTime(t string) *ReservationBuilder {
	b.Time = t
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.NumberOfGuests = n
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(s string) *ReservationBuilder {
	b.SpecialRequests = &s
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) AsPastDate() *ReservationBuilder {
	b.Date = b.Now.AddDate(0, 0, -1)
	return b
}

func (b *ReservationBuilder) AsSameDay() *ReservationBuilder {
	b.Date = b.Now
	return b
}
