package request

type SetupRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       *string `json:"email,omitempty"`
	CuisineType *string `json:"cuisine_type,omitempty"`
	PriceRange  *string `json:"price_range,omitempty"`
	MaxCapacity *int32  `json:"max_capacity,omitempty"`
}

type UpdateRestaurantProfileRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       *string `json:"email,omitempty"`
	CuisineType *string `json:"cuisine_type,omitempty"`
	PriceRange  *string `json:"price_range,omitempty"`
	MaxCapacity *int32  `json:"max_capacity,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type UpdateBrandingRequest struct {
	LogoURL        *string `json:"logo_url,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
}

type AddGalleryPhotoRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// UpdateChatbotContextRequest feeds the assistant's knowledge base.
type UpdateChatbotContextRequest struct {
	MenuDescription *string `json:"menu_description,omitempty"`
	FAQInfo         *string `json:"faq_info,omitempty"`
	AdditionalInfo  *string `json:"additional_info,omitempty"`
}
