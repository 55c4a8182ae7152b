package models

import (
	"strconv"
	"time"

	"github.com/lucsky/cuid"
)

type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
}

type Dish struct {
	DishID        int       `json:"dish_id"`
	Name          string    `json:"name"`
	NameEn        string    `json:"name_en"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	OrderCount    int       `json:"order_count"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url,omitempty"`
	Description   string    `json:"description"`
	DescriptionEn string    `json:"description_en"`
	Ingredients   []string  `json:"ingredients"`
	IngredientsEn []string  `json:"ingredients_en"`
	Nutrition     Nutrition `json:"nutrition"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// CartItem is the display snapshot a cart line keeps of whatever was added,
// whether a catalog dish or a free-text custom request. Cart rendering never
// goes back to the catalog once a line exists.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameEn   string  `json:"name_en"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"image_url,omitempty"`
	IsCustom bool    `json:"is_custom,omitempty"`
}

func (d *Dish) CartItem() CartItem {
	return CartItem{
		ID:       strconv.Itoa(d.DishID),
		Name:     d.Name,
		NameEn:   d.NameEn,
		Price:    d.Price,
		Category: d.Category,
		ImageURL: d.ImageURL,
	}
}

// NewCustomItem builds an off-menu request: synthetic id, zero price,
// fixed category. It enters the cart exactly like a catalog dish.
func NewCustomItem(name string) CartItem {
	return CartItem{
		ID:       "custom-" + cuid.New(),
		Name:     name,
		NameEn:   name,
		Price:    0,
		Category: CategoryCustom,
		IsCustom: true,
	}
}
