package writerepo

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/user"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, display_name, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.DisplayName().Value(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

const updateUserRoleSQL = `
UPDATE users SET role = $2, updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateRole(ctx context.Context, tx db.DBTX, id uuid.UUID, role user.Role) error {
	tag, err := tx.Exec(ctx, updateUserRoleSQL, id, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateUserLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateUserLastLoginSQL, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
