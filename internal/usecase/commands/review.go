package commands

import (
	"context"

	"github.com/angelgmx/reservaIA/internal/domain/review"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewCommands interface {
	// SubmitReview is public: diners leave reviews without an account.
	SubmitReview(ctx context.Context, restaurantID uuid.UUID, req reqdto.CreateReviewRequest) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReviewCommands(uow shared.UnitOfWork) ReviewCommands {
	return &reviewCommandsImpl{uow: uow}
}

func (c *reviewCommandsImpl) SubmitReview(ctx context.Context, restaurantID uuid.UUID, req reqdto.CreateReviewRequest) (uuid.UUID, error) {
	customerName, err := review.NewCustomerName(req.CustomerName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	comment, err := review.NewComment(derefOrEmpty(req.Comment))
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	rev := review.NewReview(restaurantID, customerName, rating, comment)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RestaurantByID(ctx, restaurantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRestaurantNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !snap.IsActive {
			return errs.Mark(errs.New("restaurant inactive"), ErrRestaurantNotFound)
		}

		if _, err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return rev.ID(), nil
}
