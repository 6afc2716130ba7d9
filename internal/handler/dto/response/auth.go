package response

import (
	"time"

	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID      uuid.UUID `json:"userId"`
	AccessToken string    `json:"accessToken"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        string     `json:"role"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          v.ID,
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Role:        v.Role,
		LastLogin:   v.LastLogin,
		CreatedAt:   v.CreatedAt,
	}
}
