package writerepo

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/menu"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"

	"github.com/google/uuid"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

const insertMenuItemSQL = `
INSERT INTO menu_items (
    id, restaurant_id, name, description, price_cents, category, is_available
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *MenuRepository) Create(ctx context.Context, tx db.DBTX, item *menu.Item) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertMenuItemSQL,
		item.ID(),
		item.RestaurantID(),
		item.Name(),
		emptyToNull(item.Description()),
		item.PriceCents(),
		item.Category(),
		item.IsAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create menu item", err)
	}

	return id, nil
}

const updateMenuItemSQL = `
UPDATE menu_items SET
    name = $2,
    description = $3,
    price_cents = $4,
    category = $5,
    is_available = $6,
    updated_at = now()
WHERE id = $1`

func (r *MenuRepository) Update(ctx context.Context, tx db.DBTX, item *menu.Item) error {
	tag, err := tx.Exec(ctx, updateMenuItemSQL,
		item.ID(),
		item.Name(),
		emptyToNull(item.Description()),
		item.PriceCents(),
		item.Category(),
		item.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteMenuItemSQL = `DELETE FROM menu_items WHERE id = $1`

func (r *MenuRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteMenuItemSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}
