package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/infra/chatbot"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
	"github.com/angelgmx/reservaIA/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrRestaurantNotFound = errs.New("restaurant not found")

type Turn struct {
	Role    string
	Content string
}

type Gateway interface {
	Complete(ctx context.Context, messages []chatbot.Message) (string, error)
}

type Service interface {
	// Ask answers a customer question grounded on the restaurant profile
	// and its currently available menu.
	Ask(ctx context.Context, restaurantID uuid.UUID, message string, history []Turn) (string, error)
}

type serviceImpl struct {
	restaurants queries.RestaurantQueries
	menu        queries.MenuQueries
	gateway     Gateway
}

func NewService(restaurants queries.RestaurantQueries, menu queries.MenuQueries, gateway Gateway) Service {
	return &serviceImpl{
		restaurants: restaurants,
		menu:        menu,
		gateway:     gateway,
	}
}

func (s *serviceImpl) Ask(ctx context.Context, restaurantID uuid.UUID, message string, history []Turn) (string, error) {
	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrRestaurantNotFound)
		}
		return "", err
	}

	items, err := s.menu.ListAvailableByRestaurant(ctx, restaurantID)
	if err != nil {
		return "", err
	}

	messages := make([]chatbot.Message, 0, len(history)+2)
	messages = append(messages, chatbot.Message{
		Role:    "system",
		Content: buildSystemPrompt(rest, items),
	})
	for _, turn := range history {
		messages = append(messages, chatbot.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatbot.Message{Role: "user", Content: message})

	return s.gateway.Complete(ctx, messages)
}

// The assistant speaks the customers' language; the prompt stays Spanish
// like the rest of the customer-facing copy.
func buildSystemPrompt(rest *queries.RestaurantView, items []*queries.MenuItemView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Eres un asistente virtual para el restaurante %q.\n\n", rest.Name)
	b.WriteString("Información del restaurante:\n")
	fmt.Fprintf(&b, "- Nombre: %s\n", rest.Name)
	fmt.Fprintf(&b, "- Descripción: %s\n", orUnavailable(rest.Description))
	fmt.Fprintf(&b, "- Dirección: %s, %s\n", rest.Address, rest.City)
	fmt.Fprintf(&b, "- Teléfono: %s\n", rest.Phone)
	fmt.Fprintf(&b, "- Email: %s\n", orUnavailable(rest.Email))
	fmt.Fprintf(&b, "- Tipo de cocina: %s\n", orUnspecified(rest.CuisineType))
	fmt.Fprintf(&b, "- Rango de precios: %s\n", rest.PriceRange)

	if rest.MenuDescription != nil && *rest.MenuDescription != "" {
		fmt.Fprintf(&b, "- Descripción del menú: %s\n", *rest.MenuDescription)
	}
	if rest.FAQInfo != nil && *rest.FAQInfo != "" {
		fmt.Fprintf(&b, "- Preguntas frecuentes: %s\n", *rest.FAQInfo)
	}
	if rest.AdditionalInfo != nil && *rest.AdditionalInfo != "" {
		fmt.Fprintf(&b, "- Información adicional: %s\n", *rest.AdditionalInfo)
	}

	if len(items) > 0 {
		b.WriteString("\nMenú disponible:\n")
		for _, category := range categoriesInOrder(items) {
			fmt.Fprintf(&b, "\n%s:\n", category)
			for _, item := range items {
				if item.Category != category {
					continue
				}
				fmt.Fprintf(&b, "- %s (€%.2f)", item.Name, float64(item.PriceCents)/100)
				if item.Description != nil && *item.Description != "" {
					fmt.Fprintf(&b, ": %s", *item.Description)
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\nPor favor, responde de manera amable y útil a las preguntas de los clientes sobre el restaurante. Si te preguntan sobre reservas, indícales que pueden hacer una reserva directamente en la página.")

	return b.String()
}

func categoriesInOrder(items []*queries.MenuItemView) []string {
	seen := make(map[string]bool, len(items))
	var categories []string
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

func orUnavailable(s *string) string {
	if s == nil || *s == "" {
		return "No disponible"
	}
	return *s
}

func orUnspecified(s *string) string {
	if s == nil || *s == "" {
		return "No especificado"
	}
	return *s
}
