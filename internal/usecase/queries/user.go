package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView carries what middleware and handlers need to know
// about the authenticated account.
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	GetByEmail(ctx context.Context, email string) (*AuthorizedUserView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *userQueriesImpl) GetByEmail(ctx context.Context, email string) (*AuthorizedUserView, error) {
	return q.repo.FindByEmail(ctx, email)
}
