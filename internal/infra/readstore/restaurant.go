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

type RestaurantReadStore struct {
	db db.DBTX
}

func NewRestaurantReadStore(db db.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{db: db}
}

const restaurantViewColumns = `
    id, owner_id, name, description, address, city, phone, email,
    cuisine_type, price_range, max_capacity, logo_url, gallery_photos,
    primary_color, secondary_color, menu_description, faq_info,
    additional_info, is_active, created_at, updated_at`

const findRestaurantByIDSQL = `
SELECT` + restaurantViewColumns + `
FROM restaurants
WHERE id = $1`

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	return r.findOne(ctx, findRestaurantByIDSQL, id)
}

const findRestaurantByOwnerSQL = `
SELECT` + restaurantViewColumns + `
FROM restaurants
WHERE owner_id = $1`

func (r *RestaurantReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*queries.RestaurantView, error) {
	return r.findOne(ctx, findRestaurantByOwnerSQL, ownerID)
}

func (r *RestaurantReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.RestaurantView, error) {
	row := r.db.QueryRow(ctx, sql, arg)

	view, err := scanRestaurantView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant", err)
	}

	return view, nil
}

// Booking pages only see active restaurants.
const findPublicRestaurantSQL = `
SELECT
    id, name, description, address, city, phone, cuisine_type,
    price_range, logo_url, gallery_photos, primary_color, secondary_color
FROM restaurants
WHERE id = $1 AND is_active = true`

func (r *RestaurantReadStore) FindPublicByID(ctx context.Context, id uuid.UUID) (*queries.PublicRestaurantView, error) {
	var (
		v           queries.PublicRestaurantView
		description pgtype.Text
		cuisine     pgtype.Text
		logo        pgtype.Text
		primary     pgtype.Text
		secondary   pgtype.Text
	)

	err := r.db.QueryRow(ctx, findPublicRestaurantSQL, id).Scan(
		&v.ID,
		&v.Name,
		&description,
		&v.Address,
		&v.City,
		&v.Phone,
		&cuisine,
		&v.PriceRange,
		&logo,
		&v.GalleryPhotos,
		&primary,
		&secondary,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find public restaurant", err)
	}

	v.Description = pgconv.TextPtr(description)
	v.CuisineType = pgconv.TextPtr(cuisine)
	v.LogoURL = pgconv.TextPtr(logo)
	v.PrimaryColor = pgconv.TextPtr(primary)
	v.SecondaryColor = pgconv.TextPtr(secondary)
	if v.GalleryPhotos == nil {
		v.GalleryPhotos = []string{}
	}

	return &v, nil
}

func scanRestaurantView(row rowScanner) (*queries.RestaurantView, error) {
	var (
		v           queries.RestaurantView
		description pgtype.Text
		email       pgtype.Text
		cuisine     pgtype.Text
		capacity    pgtype.Int4
		logo        pgtype.Text
		primary     pgtype.Text
		secondary   pgtype.Text
		menuDesc    pgtype.Text
		faq         pgtype.Text
		additional  pgtype.Text
		created     pgtype.Timestamptz
		updated     pgtype.Timestamptz
	)

	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Name,
		&description,
		&v.Address,
		&v.City,
		&v.Phone,
		&email,
		&cuisine,
		&v.PriceRange,
		&capacity,
		&logo,
		&v.GalleryPhotos,
		&primary,
		&secondary,
		&menuDesc,
		&faq,
		&additional,
		&v.IsActive,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}

	v.Description = pgconv.TextPtr(description)
	v.Email = pgconv.TextPtr(email)
	v.CuisineType = pgconv.TextPtr(cuisine)
	v.MaxCapacity = pgconv.Int4Ptr(capacity)
	v.LogoURL = pgconv.TextPtr(logo)
	v.PrimaryColor = pgconv.TextPtr(primary)
	v.SecondaryColor = pgconv.TextPtr(secondary)
	v.MenuDescription = pgconv.TextPtr(menuDesc)
	v.FAQInfo = pgconv.TextPtr(faq)
	v.AdditionalInfo = pgconv.TextPtr(additional)
	v.CreatedAt = created.Time
	v.UpdatedAt = updated.Time
	if v.GalleryPhotos == nil {
		v.GalleryPhotos = []string{}
	}

	return &v, nil
}
