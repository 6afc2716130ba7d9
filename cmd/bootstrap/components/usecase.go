package components

import (
	"github.com/angelgmx/reservaIA/internal/domain/reservation"
	"github.com/angelgmx/reservaIA/internal/infra/chatbot"
	"github.com/angelgmx/reservaIA/internal/pkg/clock"
	"github.com/angelgmx/reservaIA/internal/pkg/config"
	"github.com/angelgmx/reservaIA/internal/usecase/chat"
	"github.com/angelgmx/reservaIA/internal/usecase/commands"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseChatModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewRestaurantCommands,
		commands.NewMenuCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewRestaurantQueries,
		queries.NewMenuQueries,
		queries.NewReviewQueries,
	),
)

var usecaseChatModule = fx.Module("usecase/chat",
	fx.Provide(
		fx.Annotate(
			NewChatbotClient,
			fx.As(new(chat.Gateway)),
		),
		chat.NewService,
	),
)

func NewChatbotClient(cfg config.Config) *chatbot.Client {
	return chatbot.NewClient(cfg.Chatbot)
}
