package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/angelgmx/reservaIA/internal/handler/api"
	"github.com/angelgmx/reservaIA/internal/handler/middleware"
	"github.com/angelgmx/reservaIA/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Restaurant  *api.RestaurantHandler
	Menu        *api.MenuHandler
	Review      *api.ReviewHandler
	Chat        *api.ChatHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: handlers.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		// The public surface serves diners: no account required to browse a
		// restaurant, book a table, leave a review or talk to the assistant.
		public := apiGroup.Group("/public/restaurants/:id")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Restaurant.GetPublicProfile},
				{Method: http.MethodGet, Path: "/menu", Handler: handlers.Menu.GetPublicMenu},
				{Method: http.MethodGet, Path: "/reviews", Handler: handlers.Review.ListReviews},
				{Method: http.MethodGet, Path: "/reviews/summary", Handler: handlers.Review.GetRatingSummary},
				{Method: http.MethodPost, Path: "/reservations", Handler: handlers.Reservation.SubmitReservation},
				{Method: http.MethodPost, Path: "/reviews", Handler: handlers.Review.SubmitReview},
				{Method: http.MethodPost, Path: "/chat", Handler: handlers.Chat.Ask},
			})
		}

		restaurants := apiGroup.Group("/restaurants")
		restaurants.Use(authMiddleware.RequireAuth())
		{
			// Setup promotes the caller to owner, so it must not be gated
			// behind the owner role itself.
			addRoutes(restaurants, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Restaurant.Setup},
			})

			owned := restaurants.Group("/me")
			owned.Use(authMiddleware.RequireOwner())
			addRoutes(owned, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Restaurant.GetMine},
				{Method: http.MethodPut, Path: "", Handler: handlers.Restaurant.UpdateProfile},
				{Method: http.MethodPatch, Path: "/branding", Handler: handlers.Restaurant.UpdateBranding},
				{Method: http.MethodPost, Path: "/gallery", Handler: handlers.Restaurant.AddGalleryPhoto},
				{Method: http.MethodDelete, Path: "/gallery/:index", Handler: handlers.Restaurant.RemoveGalleryPhoto},
				{Method: http.MethodPatch, Path: "/chatbot-context", Handler: handlers.Restaurant.UpdateChatbotContext},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOwner())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Reservation.ListReservations},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Reservation.UpdateStatus},
			})
		}

		menu := apiGroup.Group("/menu")
		menu.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOwner())
		{
			addRoutes(menu, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Menu.ListItems},
				{Method: http.MethodPost, Path: "", Handler: handlers.Menu.CreateItem},
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.Menu.UpdateItem},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Menu.DeleteItem},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
