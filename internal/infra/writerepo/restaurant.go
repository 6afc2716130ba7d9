package writerepo

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/restaurant"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"
	"github.com/angelgmx/reservaIA/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RestaurantRepository struct{}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

const insertRestaurantSQL = `
INSERT INTO restaurants (
    id, owner_id, name, description, address, city, phone, email,
    cuisine_type, price_range, max_capacity, is_active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *RestaurantRepository) Create(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertRestaurantSQL,
		rest.ID(),
		rest.OwnerID(),
		rest.Name().Value(),
		emptyToNull(rest.Description()),
		rest.Contact().Address(),
		rest.Contact().City(),
		rest.Contact().Phone(),
		emptyToNull(rest.Contact().Email()),
		emptyToNull(rest.CuisineType()),
		rest.PriceRange().String(),
		pgconv.Int4FromPtr(rest.Capacity().Limit()),
		rest.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create restaurant", err)
	}

	return id, nil
}

const updateRestaurantSQL = `
UPDATE restaurants SET
    name = $2,
    description = $3,
    address = $4,
    city = $5,
    phone = $6,
    email = $7,
    cuisine_type = $8,
    price_range = $9,
    max_capacity = $10,
    logo_url = $11,
    gallery_photos = $12,
    primary_color = $13,
    secondary_color = $14,
    menu_description = $15,
    faq_info = $16,
    additional_info = $17,
    is_active = $18,
    updated_at = now()
WHERE id = $1`

// Update writes the whole editable profile. Settings pages save full
// forms, so partial updates are not worth the extra queries.
func (r *RestaurantRepository) Update(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) error {
	gallery := rest.GalleryPhotos()
	if gallery == nil {
		gallery = []string{}
	}

	tag, err := tx.Exec(ctx, updateRestaurantSQL,
		rest.ID(),
		rest.Name().Value(),
		emptyToNull(rest.Description()),
		rest.Contact().Address(),
		rest.Contact().City(),
		rest.Contact().Phone(),
		emptyToNull(rest.Contact().Email()),
		emptyToNull(rest.CuisineType()),
		rest.PriceRange().String(),
		pgconv.Int4FromPtr(rest.Capacity().Limit()),
		emptyToNull(rest.LogoURL()),
		gallery,
		emptyToNull(rest.PrimaryColor().Value()),
		emptyToNull(rest.SecondaryColor().Value()),
		emptyToNull(rest.MenuDescription()),
		emptyToNull(rest.FAQInfo()),
		emptyToNull(rest.AdditionalInfo()),
		rest.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

const findRestaurantByOwnerForUpdateSQL = `
SELECT id, owner_id, name, description, address, city, phone, email,
       cuisine_type, price_range, max_capacity, logo_url, gallery_photos,
       primary_color, secondary_color, menu_description, faq_info,
       additional_info, is_active, created_at, updated_at
FROM restaurants
WHERE owner_id = $1
FOR UPDATE`

func (r *RestaurantRepository) FindByOwnerForUpdate(ctx context.Context, tx db.DBTX, ownerID uuid.UUID) (*restaurant.Restaurant, error) {
	var (
		id, owner     uuid.UUID
		name          string
		description   pgtype.Text
		address       string
		city          string
		phone         string
		email         pgtype.Text
		cuisine       pgtype.Text
		priceRangeRaw string
		capacityRaw   pgtype.Int4
		logo          pgtype.Text
		gallery       []string
		primaryRaw    pgtype.Text
		secondaryRaw  pgtype.Text
		menuDesc      pgtype.Text
		faq           pgtype.Text
		additional    pgtype.Text
		isActive      bool
		created       pgtype.Timestamptz
		updated       pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, findRestaurantByOwnerForUpdateSQL, ownerID).Scan(
		&id, &owner, &name, &description, &address, &city, &phone, &email,
		&cuisine, &priceRangeRaw, &capacityRaw, &logo, &gallery,
		&primaryRaw, &secondaryRaw, &menuDesc, &faq, &additional,
		&isActive, &created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load restaurant for update", err)
	}

	nameVO, err := restaurant.NewName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("stored restaurant name invalid", err)
	}
	contact, err := restaurant.NewContactInfo(address, city, phone, textOrEmpty(email))
	if err != nil {
		return nil, infra.WrapRepoErr("stored restaurant contact invalid", err)
	}
	priceRange, err := restaurant.NewPriceRange(priceRangeRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored price range invalid", err)
	}
	capacity, err := restaurant.NewCapacity(pgconv.Int4Ptr(capacityRaw))
	if err != nil {
		return nil, infra.WrapRepoErr("stored capacity invalid", err)
	}
	primary, err := restaurant.NewThemeColor(textOrEmpty(primaryRaw))
	if err != nil {
		return nil, infra.WrapRepoErr("stored primary color invalid", err)
	}
	secondary, err := restaurant.NewThemeColor(textOrEmpty(secondaryRaw))
	if err != nil {
		return nil, infra.WrapRepoErr("stored secondary color invalid", err)
	}

	return restaurant.ReconstructRestaurant(
		id, owner, nameVO,
		textOrEmpty(description),
		contact,
		textOrEmpty(cuisine),
		priceRange,
		capacity,
		textOrEmpty(logo),
		gallery,
		primary, secondary,
		textOrEmpty(menuDesc),
		textOrEmpty(faq),
		textOrEmpty(additional),
		isActive,
		created.Time, updated.Time,
	), nil
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func emptyToNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
