package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrGuestCountOutOfRange = errors.New("number of guests must be between 1 and 20")
	ErrInvalidTimeOfDay     = errors.New("invalid reservation time")
	ErrInvalidDate          = errors.New("invalid reservation date")
	ErrPastDate             = errors.New("reservation date cannot be in the past")
	ErrEmptyCustomerName    = errors.New("customer name cannot be empty")
	ErrInvalidCustomerEmail = errors.New("invalid customer email format")
	ErrEmptyCustomerPhone   = errors.New("customer phone cannot be empty")
	ErrRequestsTooLong      = errors.New("special requests exceed maximum length")
)

const (
	MinGuests = 1
	MaxGuests = 20

	MaxSpecialRequestsLength = 500
)

var customerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinGuests || n > MaxGuests {
		return GuestCount{}, ErrGuestCountOutOfRange
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Value() int {
	return g.value
}

// TimeOfDay is a wall-clock time with minute precision. The system does
// not model timezones; the restaurant's local clock is assumed throughout.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// Slot is the capacity-aggregation key: one restaurant, one calendar
// date, one time of day.
type Slot struct {
	date      time.Time
	timeOfDay TimeOfDay
}

// NewSlot validates that date is today or later relative to now.
// Same-day reservations are accepted; only full calendar days in the
// past are rejected.
func NewSlot(date time.Time, timeOfDay TimeOfDay, now time.Time) (Slot, error) {
	if truncateToDate(date).Before(truncateToDate(now)) {
		return Slot{}, ErrPastDate
	}
	return Slot{date: truncateToDate(date), timeOfDay: timeOfDay}, nil
}

// ReconstructSlot rebuilds a slot from storage without the past-date check.
func ReconstructSlot(date time.Time, timeOfDay TimeOfDay) Slot {
	return Slot{date: truncateToDate(date), timeOfDay: timeOfDay}
}

func (s Slot) Date() time.Time {
	return s.date
}

func (s Slot) Time() TimeOfDay {
	return s.timeOfDay
}

func (s Slot) String() string {
	return s.date.Format("2006-01-02") + " " + s.timeOfDay.String()
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type CustomerContact struct {
	name  string
	email string
	phone string
}

func NewCustomerContact(name, email, phone string) (CustomerContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CustomerContact{}, ErrEmptyCustomerName
	}

	email = strings.TrimSpace(email)
	if !customerEmailRegex.MatchString(email) {
		return CustomerContact{}, ErrInvalidCustomerEmail
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return CustomerContact{}, ErrEmptyCustomerPhone
	}

	return CustomerContact{name: name, email: email, phone: phone}, nil
}

func (c CustomerContact) Name() string  { return c.name }
func (c CustomerContact) Email() string { return c.email }
func (c CustomerContact) Phone() string { return c.phone }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrRequestsTooLong
	}
	return SpecialRequests{value: s}, nil
}

func (r SpecialRequests) String() string {
	return r.value
}

func (r SpecialRequests) IsEmpty() bool {
	return r.value == ""
}
