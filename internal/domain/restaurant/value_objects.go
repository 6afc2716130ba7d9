package restaurant

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName         = errors.New("restaurant name cannot be empty")
	ErrNameTooLong       = errors.New("restaurant name exceeds maximum length")
	ErrEmptyAddress      = errors.New("restaurant address cannot be empty")
	ErrEmptyCity         = errors.New("restaurant city cannot be empty")
	ErrEmptyPhone        = errors.New("restaurant phone cannot be empty")
	ErrInvalidCapacity   = errors.New("max capacity must be a positive integer")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidThemeColor = errors.New("theme color must be a hex color code")
)

const MaxNameLength = 200

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Capacity is the optional hard limit on concurrent guests per slot.
// Unset means the restaurant never rejects on capacity.
type Capacity struct {
	limit *int32
}

func NewCapacity(limit *int32) (Capacity, error) {
	if limit != nil && *limit <= 0 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{limit: limit}, nil
}

func Uncapped() Capacity {
	return Capacity{}
}

func (c Capacity) IsSet() bool {
	return c.limit != nil
}

func (c Capacity) Limit() *int32 {
	return c.limit
}

// Admits reports whether booked+requested guests fit under the limit.
// An unset capacity admits unconditionally.
func (c Capacity) Admits(booked, requested int32) bool {
	if c.limit == nil {
		return true
	}
	return booked+requested <= *c.limit
}

type ContactInfo struct {
	address string
	city    string
	phone   string
	email   string
}

func NewContactInfo(address, city, phone, email string) (ContactInfo, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return ContactInfo{}, ErrEmptyAddress
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return ContactInfo{}, ErrEmptyCity
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ContactInfo{}, ErrEmptyPhone
	}
	return ContactInfo{
		address: address,
		city:    city,
		phone:   phone,
		email:   strings.TrimSpace(email),
	}, nil
}

func (c ContactInfo) Address() string { return c.address }
func (c ContactInfo) City() string    { return c.city }
func (c ContactInfo) Phone() string   { return c.phone }
func (c ContactInfo) Email() string   { return c.email }

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type ThemeColor struct {
	value string
}

func NewThemeColor(s string) (ThemeColor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ThemeColor{}, nil
	}
	if !hexColorRegex.MatchString(s) {
		return ThemeColor{}, ErrInvalidThemeColor
	}
	return ThemeColor{value: s}, nil
}

func (t ThemeColor) Value() string {
	return t.value
}

func (t ThemeColor) IsEmpty() bool {
	return t.value == ""
}
