package response

import (
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Category    string    `json:"category"`
	IsAvailable bool      `json:"isAvailable"`
}

type MenuItemCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromMenuItemView(v *queries.MenuItemView) *MenuItemResponse {
	return &MenuItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		PriceCents:  v.PriceCents,
		Category:    v.Category,
		IsAvailable: v.IsAvailable,
	}
}

func FromMenuItemViews(views []*queries.MenuItemView) []*MenuItemResponse {
	result := make([]*MenuItemResponse, len(views))
	for i, v := range views {
		result[i] = FromMenuItemView(v)
	}
	return result
}
