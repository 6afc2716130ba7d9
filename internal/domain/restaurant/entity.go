package restaurant

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the profile behind a shareable booking link. One owner,
// one restaurant; never hard-deleted, only deactivated.
type Restaurant struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            Name
	description     string
	contact         ContactInfo
	cuisineType     string
	priceRange      PriceRange
	capacity        Capacity
	logoURL         string
	galleryPhotos   []string
	primaryColor    ThemeColor
	secondaryColor  ThemeColor
	menuDescription string
	faqInfo         string
	additionalInfo  string
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRestaurant(
	ownerID uuid.UUID,
	name Name,
	description string,
	contact ContactInfo,
	cuisineType string,
	priceRange PriceRange,
	capacity Capacity,
) *Restaurant {
	return &Restaurant{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		contact:     contact,
		cuisineType: cuisineType,
		priceRange:  priceRange,
		capacity:    capacity,
		isActive:    true,
	}
}

func ReconstructRestaurant(
	id, ownerID uuid.UUID,
	name Name,
	description string,
	contact ContactInfo,
	cuisineType string,
	priceRange PriceRange,
	capacity Capacity,
	logoURL string,
	galleryPhotos []string,
	primaryColor, secondaryColor ThemeColor,
	menuDescription, faqInfo, additionalInfo string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Restaurant {
	return &Restaurant{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		description:     description,
		contact:         contact,
		cuisineType:     cuisineType,
		priceRange:      priceRange,
		capacity:        capacity,
		logoURL:         logoURL,
		galleryPhotos:   galleryPhotos,
		primaryColor:    primaryColor,
		secondaryColor:  secondaryColor,
		menuDescription: menuDescription,
		faqInfo:         faqInfo,
		additionalInfo:  additionalInfo,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// UpdateProfile replaces the core profile fields. Branding and chatbot
// context are edited through their own mutators.
func (r *Restaurant) UpdateProfile(
	name Name,
	description string,
	contact ContactInfo,
	cuisineType string,
	priceRange PriceRange,
	capacity Capacity,
) {
	r.name = name
	r.description = description
	r.contact = contact
	r.cuisineType = cuisineType
	r.priceRange = priceRange
	r.capacity = capacity
}

func (r *Restaurant) SetActive(active bool) {
	r.isActive = active
}

func (r *Restaurant) SetChatbotContext(menuDescription, faqInfo, additionalInfo string) {
	r.menuDescription = menuDescription
	r.faqInfo = faqInfo
	r.additionalInfo = additionalInfo
}

func (r *Restaurant) SetLogoURL(url string) {
	r.logoURL = url
}

func (r *Restaurant) AddGalleryPhoto(url string) {
	r.galleryPhotos = append(r.galleryPhotos, url)
}

func (r *Restaurant) RemoveGalleryPhoto(index int) bool {
	if index < 0 || index >= len(r.galleryPhotos) {
		return false
	}
	r.galleryPhotos = append(r.galleryPhotos[:index], r.galleryPhotos[index+1:]...)
	return true
}

func (r *Restaurant) SetThemeColors(primary, secondary ThemeColor) {
	r.primaryColor = primary
	r.secondaryColor = secondary
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Restaurant) Name() Name           { return r.name }
func (r *Restaurant) Description() string  { return r.description }
func (r *Restaurant) Contact() ContactInfo { return r.contact }
func (r *Restaurant) CuisineType() string  { return r.cuisineType }
func (r *Restaurant) PriceRange() PriceRange {
	return r.priceRange
}
func (r *Restaurant) Capacity() Capacity { return r.capacity }
func (r *Restaurant) LogoURL() string    { return r.logoURL }
func (r *Restaurant) GalleryPhotos() []string {
	return r.galleryPhotos
}
func (r *Restaurant) PrimaryColor() ThemeColor   { return r.primaryColor }
func (r *Restaurant) SecondaryColor() ThemeColor { return r.secondaryColor }
func (r *Restaurant) MenuDescription() string    { return r.menuDescription }
func (r *Restaurant) FAQInfo() string            { return r.faqInfo }
func (r *Restaurant) AdditionalInfo() string     { return r.additionalInfo }
func (r *Restaurant) IsActive() bool             { return r.isActive }
func (r *Restaurant) CreatedAt() time.Time       { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time       { return r.updatedAt }

func (r *Restaurant) IsOwnedBy(userID uuid.UUID) bool {
	return r.ownerID == userID
}
