package writerepo

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/review"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const insertReviewSQL = `
INSERT INTO reviews (id, restaurant_id, customer_name, rating, comment)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertReviewSQL,
		rev.ID(),
		rev.RestaurantID(),
		rev.CustomerName().Value(),
		int32(rev.Rating().Value()),
		emptyToNull(rev.Comment().Value()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}
