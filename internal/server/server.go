// Package server exposes the menu API: dish catalog, order intake and the
// notification message board, backed by the postgres repositories.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/chenmo1212/foodorder/internal/events"
	"github.com/chenmo1212/foodorder/internal/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Pinger lets the health endpoint verify database connectivity without the
// server knowing about connection pools.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	dishes   repositories.DishRepository
	orders   repositories.OrderRepository
	messages repositories.MessageRepository
	events   events.Publisher // nil when eventing is disabled
	db       Pinger
	relayURL string // optional downstream webhook for incoming messages
	log      *slog.Logger
}

func New(
	dishes repositories.DishRepository,
	orders repositories.OrderRepository,
	messages repositories.MessageRepository,
	publisher events.Publisher,
	db Pinger,
	relayURL string,
	log *slog.Logger,
) *Server {
	return &Server{
		dishes:   dishes,
		orders:   orders,
		messages: messages,
		events:   publisher,
		db:       db,
		relayURL: relayURL,
		log:      log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/dishes", func(r chi.Router) {
		r.Get("/", s.handleListDishes)
		r.Get("/popular", s.handlePopularDishes)
		r.Get("/search", s.handleSearchDishes)
		r.Get("/{dishID}", s.handleGetDish)
		r.Patch("/{dishID}/stock", s.handleUpdateStock)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", s.handleCreateOrder)
		r.Get("/", s.handleListOrders)
		r.Get("/{orderNumber}", s.handleGetOrder)
		r.Patch("/{orderNumber}/status", s.handleUpdateOrderStatus)
		r.Delete("/{orderNumber}", s.handleCancelOrder)
	})

	r.Get("/stats/dishes", s.handleDishStats)
	r.Get("/stats/orders", s.handleOrderStats)

	r.Post("/messages", s.handleCreateMessage)
	r.Get("/messages", s.handleListMessages)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.respond(w, http.StatusInternalServerError, map[string]interface{}{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"database": "connected",
		"service":  "Food Menu API",
	})
}
