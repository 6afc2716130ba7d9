package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName      = errors.New("menu item name cannot be empty")
	ErrNegativePrice      = errors.New("menu item price cannot be negative")
	ErrEmptyCategory      = errors.New("menu item category cannot be empty")
	ErrDescriptionTooLong = errors.New("menu item description exceeds maximum length")
)

const MaxDescriptionLength = 1000

// Item is one entry on a restaurant's menu. PriceCents avoids float
// arithmetic on money; the euro amount only exists at the API boundary.
type Item struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	name         string
	description  string
	priceCents   int64
	category     string
	isAvailable  bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewItem(restaurantID uuid.UUID, name, description string, priceCents int64, category string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyItemName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	return &Item{
		id:           uuid.New(),
		restaurantID: restaurantID,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		category:     category,
		isAvailable:  true,
	}, nil
}

func ReconstructItem(
	id, restaurantID uuid.UUID,
	name, description string,
	priceCents int64,
	category string,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		category:     category,
		isAvailable:  isAvailable,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i *Item) SetAvailability(available bool) {
	i.isAvailable = available
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) RestaurantID() uuid.UUID { return i.restaurantID }
func (i *Item) Name() string            { return i.name }
func (i *Item) Description() string     { return i.description }
func (i *Item) PriceCents() int64       { return i.priceCents }
func (i *Item) Category() string        { return i.category }
func (i *Item) IsAvailable() bool       { return i.isAvailable }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }
