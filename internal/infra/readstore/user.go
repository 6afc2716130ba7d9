package readstore

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/pkg/pgconv"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const userViewColumns = `
    id, email, display_name, role, is_active, last_login, created_at`

const findUserByIDSQL = `
SELECT` + userViewColumns + `
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx, findUserByIDSQL, id)
}

const findUserByEmailSQL = `
SELECT` + userViewColumns + `
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx, findUserByEmailSQL, email)
}

func (r *UserReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.AuthorizedUserView, error) {
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
		created   pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&v.ID,
		&v.Email,
		&v.DisplayName,
		&v.Role,
		&v.IsActive,
		&lastLogin,
		&created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	v.LastLogin = pgconv.TimePtr(lastLogin)
	v.CreatedAt = created.Time

	return &v, nil
}
