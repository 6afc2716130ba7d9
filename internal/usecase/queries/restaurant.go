package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RestaurantView is the owner-facing profile with every editable field.
type RestaurantView struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email,omitempty"`
	CuisineType     *string   `json:"cuisine_type,omitempty"`
	PriceRange      string    `json:"price_range"`
	MaxCapacity     *int32    `json:"max_capacity,omitempty"`
	LogoURL         *string   `json:"logo_url,omitempty"`
	GalleryPhotos   []string  `json:"gallery_photos"`
	PrimaryColor    *string   `json:"primary_color,omitempty"`
	SecondaryColor  *string   `json:"secondary_color,omitempty"`
	MenuDescription *string   `json:"menu_description,omitempty"`
	FAQInfo         *string   `json:"faq_info,omitempty"`
	AdditionalInfo  *string   `json:"additional_info,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PublicRestaurantView is what the booking page sees. Owner identity and
// internal chatbot context fields stay out of it.
type PublicRestaurantView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Phone          string    `json:"phone"`
	CuisineType    *string   `json:"cuisine_type,omitempty"`
	PriceRange     string    `json:"price_range"`
	LogoURL        *string   `json:"logo_url,omitempty"`
	GalleryPhotos  []string  `json:"gallery_photos"`
	PrimaryColor   *string   `json:"primary_color,omitempty"`
	SecondaryColor *string   `json:"secondary_color,omitempty"`
}

type RestaurantQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*RestaurantView, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (*PublicRestaurantView, error)
}

type RestaurantViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*RestaurantView, error)
	FindPublicByID(ctx context.Context, id uuid.UUID) (*PublicRestaurantView, error)
}

type restaurantQueriesImpl struct {
	repo RestaurantViewRepo
}

func NewRestaurantQueries(repo RestaurantViewRepo) RestaurantQueries {
	return &restaurantQueriesImpl{repo: repo}
}

func (q *restaurantQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *restaurantQueriesImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*RestaurantView, error) {
	return q.repo.FindByOwnerID(ctx, ownerID)
}

func (q *restaurantQueriesImpl) GetPublicProfile(ctx context.Context, id uuid.UUID) (*PublicRestaurantView, error) {
	return q.repo.FindPublicByID(ctx, id)
}
