package request

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
}

type UpdateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
	IsAvailable bool    `json:"is_available"`
}
