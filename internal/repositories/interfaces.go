package repositories

import (
	"context"

	"github.com/chenmo1212/foodorder/internal/models"
)

// DishQuery narrows and orders a dish listing.
type DishQuery struct {
	Category string
	IsActive *bool
	SortBy   string // order_count, price, created_at
	Order    string // asc, desc
	Limit    int
	Skip     int
}

type DishRepository interface {
	BulkCreate(ctx context.Context, dishes []*models.Dish) error
	Create(ctx context.Context, dish *models.Dish) error
	GetAll(ctx context.Context, q DishQuery) ([]*models.Dish, int, error)
	GetByID(ctx context.Context, dishID int) (*models.Dish, error)
	GetPopular(ctx context.Context, limit int) ([]*models.Dish, error)
	Search(ctx context.Context, keyword string) ([]*models.Dish, error)
	UpdateStock(ctx context.Context, dishID, delta int) (*models.Dish, error)
	IncrementOrderCount(ctx context.Context, dishID int) error
	Stats(ctx context.Context) (*models.DishStats, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// OrderQuery narrows an order listing.
type OrderQuery struct {
	CustomerEmail string
	Status        string
	DeliveryDate  string
	Limit         int
	Skip          int
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, items []*models.OrderItem) error
	GetAll(ctx context.Context, q OrderQuery) ([]*models.Order, int, error)
	GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	GetItemsByNumber(ctx context.Context, orderNumber string) ([]*models.OrderItem, error)
	UpdateStatus(ctx context.Context, orderNumber, status string) (*models.Order, error)
	Stats(ctx context.Context) (*models.OrderStats, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetAll(ctx context.Context, limit, skip int) ([]*models.Message, int, error)
}
