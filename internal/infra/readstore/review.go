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

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

const findReviewsByRestaurantSQL = `
SELECT id, restaurant_id, customer_name, rating, comment, created_at
FROM reviews
WHERE restaurant_id = $1
ORDER BY created_at DESC`

func (r *ReviewReadStore) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, findReviewsByRestaurantSQL, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			v       queries.ReviewView
			comment pgtype.Text
			created pgtype.Timestamptz
		)

		err := rows.Scan(&v.ID, &v.RestaurantID, &v.CustomerName, &v.Rating, &comment, &created)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}

		v.Comment = pgconv.TextPtr(comment)
		v.CreatedAt = created.Time
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}

const aggregateReviewsSQL = `
SELECT count(*), coalesce(avg(rating), 0)
FROM reviews
WHERE restaurant_id = $1`

func (r *ReviewReadStore) AggregateByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*queries.RestaurantRatingSummary, error) {
	summary := queries.RestaurantRatingSummary{RestaurantID: restaurantID}

	err := r.db.QueryRow(ctx, aggregateReviewsSQL, restaurantID).
		Scan(&summary.TotalReviews, &summary.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate reviews", err)
	}

	return &summary, nil
}
