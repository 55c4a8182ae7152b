package catalog

import (
	"context"

	"github.com/chenmo1212/foodorder/internal/models"
)

// Source is anything that can fetch the live catalog, typically the menu API
// client.
type Source interface {
	FetchDishes(ctx context.Context) ([]models.Dish, error)
}

// Store holds the menu for one session. It starts with the bundled dishes
// and is refreshed at most once from a remote source; the cart only ever
// reads from it.
type Store struct {
	dishes     []models.Dish
	fromRemote bool
}

func NewStore() *Store {
	dishes := make([]models.Dish, len(BundledDishes))
	copy(dishes, BundledDishes)
	return &Store{dishes: dishes}
}

// Load replaces the bundled menu with the remote one. On failure the bundled
// menu stays in place and the error is returned so the caller can surface
// it; the store remains fully usable either way.
func (s *Store) Load(ctx context.Context, src Source) error {
	dishes, err := src.FetchDishes(ctx)
	if err != nil {
		return err
	}
	s.dishes = dishes
	s.fromRemote = true
	return nil
}

// FromRemote reports whether the current menu came from the catalog service
// rather than the bundled fallback.
func (s *Store) FromRemote() bool { return s.fromRemote }

func (s *Store) Dishes() []models.Dish {
	out := make([]models.Dish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

func (s *Store) Filter(category, search string) []models.Dish {
	return Filter(s.dishes, category, search)
}

func (s *Store) ByID(dishID int) (*models.Dish, bool) {
	for i := range s.dishes {
		if s.dishes[i].DishID == dishID {
			return &s.dishes[i], true
		}
	}
	return nil, false
}
