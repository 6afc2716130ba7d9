package response

import (
	"time"

	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email,omitempty"`
	CuisineType     *string   `json:"cuisineType,omitempty"`
	PriceRange      string    `json:"priceRange"`
	MaxCapacity     *int32    `json:"maxCapacity,omitempty"`
	LogoURL         *string   `json:"logoUrl,omitempty"`
	GalleryPhotos   []string  `json:"galleryPhotos"`
	PrimaryColor    *string   `json:"primaryColor,omitempty"`
	SecondaryColor  *string   `json:"secondaryColor,omitempty"`
	MenuDescription *string   `json:"menuDescription,omitempty"`
	FAQInfo         *string   `json:"faqInfo,omitempty"`
	AdditionalInfo  *string   `json:"additionalInfo,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type PublicRestaurantResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Phone          string    `json:"phone"`
	CuisineType    *string   `json:"cuisineType,omitempty"`
	PriceRange     string    `json:"priceRange"`
	LogoURL        *string   `json:"logoUrl,omitempty"`
	GalleryPhotos  []string  `json:"galleryPhotos"`
	PrimaryColor   *string   `json:"primaryColor,omitempty"`
	SecondaryColor *string   `json:"secondaryColor,omitempty"`
}

type RestaurantCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	return &RestaurantResponse{
		ID:              v.ID,
		Name:            v.Name,
		Description:     v.Description,
		Address:         v.Address,
		City:            v.City,
		Phone:           v.Phone,
		Email:           v.Email,
		CuisineType:     v.CuisineType,
		PriceRange:      v.PriceRange,
		MaxCapacity:     v.MaxCapacity,
		LogoURL:         v.LogoURL,
		GalleryPhotos:   v.GalleryPhotos,
		PrimaryColor:    v.PrimaryColor,
		SecondaryColor:  v.SecondaryColor,
		MenuDescription: v.MenuDescription,
		FAQInfo:         v.FAQInfo,
		AdditionalInfo:  v.AdditionalInfo,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromPublicRestaurantView(v *queries.PublicRestaurantView) *PublicRestaurantResponse {
	return &PublicRestaurantResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		Address:        v.Address,
		City:           v.City,
		Phone:          v.Phone,
		CuisineType:    v.CuisineType,
		PriceRange:     v.PriceRange,
		LogoURL:        v.LogoURL,
		GalleryPhotos:  v.GalleryPhotos,
		PrimaryColor:   v.PrimaryColor,
		SecondaryColor: v.SecondaryColor,
	}
}
