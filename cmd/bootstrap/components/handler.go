package components

import (
	"github.com/angelgmx/reservaIA/internal/handler"
	"github.com/angelgmx/reservaIA/internal/handler/api"
	"github.com/angelgmx/reservaIA/internal/handler/middleware"
	"github.com/angelgmx/reservaIA/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewRestaurantHandler,
		api.NewMenuHandler,
		api.NewReviewHandler,
		api.NewChatHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	restaurant *api.RestaurantHandler,
	menu *api.MenuHandler,
	review *api.ReviewHandler,
	chat *api.ChatHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Restaurant:  restaurant,
		Menu:        menu,
		Review:      review,
		Chat:        chat,
	}
}
