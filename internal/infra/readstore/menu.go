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

type MenuReadStore struct {
	db db.DBTX
}

func NewMenuReadStore(db db.DBTX) *MenuReadStore {
	return &MenuReadStore{db: db}
}

const menuItemViewColumns = `
    id, restaurant_id, name, description, price_cents, category,
    is_available, created_at, updated_at`

const findMenuItemsByRestaurantSQL = `
SELECT` + menuItemViewColumns + `
FROM menu_items
WHERE restaurant_id = $1
ORDER BY category ASC, name ASC`

func (r *MenuReadStore) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*queries.MenuItemView, error) {
	return r.list(ctx, findMenuItemsByRestaurantSQL, restaurantID)
}

const findAvailableMenuItemsSQL = `
SELECT` + menuItemViewColumns + `
FROM menu_items
WHERE restaurant_id = $1 AND is_available = true
ORDER BY category ASC, name ASC`

func (r *MenuReadStore) FindAvailableByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*queries.MenuItemView, error) {
	return r.list(ctx, findAvailableMenuItemsSQL, restaurantID)
}

func (r *MenuReadStore) list(ctx context.Context, sql string, restaurantID uuid.UUID) ([]*queries.MenuItemView, error) {
	rows, err := r.db.Query(ctx, sql, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var result []*queries.MenuItemView
	for rows.Next() {
		var (
			v           queries.MenuItemView
			description pgtype.Text
			created     pgtype.Timestamptz
			updated     pgtype.Timestamptz
		)

		err := rows.Scan(
			&v.ID,
			&v.RestaurantID,
			&v.Name,
			&description,
			&v.PriceCents,
			&v.Category,
			&v.IsAvailable,
			&created,
			&updated,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}

		v.Description = pgconv.TextPtr(description)
		v.CreatedAt = created.Time
		v.UpdatedAt = updated.Time
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}

	return result, nil
}
