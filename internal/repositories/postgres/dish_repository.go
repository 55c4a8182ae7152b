package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/chenmo1212/foodorder/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DishRepository struct {
	pool *pgxpool.Pool
}

func NewDishRepository(pool *pgxpool.Pool) *DishRepository {
	return &DishRepository{pool: pool}
}

const dishColumns = `
    dish_id, name, name_en, price, stock, order_count, category, image_url,
    description, description_en, ingredients, ingredients_en,
    calories, protein, fat, carbs, is_active, created_at, updated_at
`

func (r *DishRepository) BulkCreate(ctx context.Context, dishes []*models.Dish) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"dishes"},
		[]string{
			"dish_id", "name", "name_en", "price", "stock", "order_count",
			"category", "image_url", "description", "description_en",
			"ingredients", "ingredients_en", "calories", "protein", "fat",
			"carbs", "is_active",
		},
		pgx.CopyFromSlice(len(dishes), func(i int) ([]interface{}, error) {
			return []interface{}{
				dishes[i].DishID,
				dishes[i].Name,
				dishes[i].NameEn,
				dishes[i].Price,
				dishes[i].Stock,
				dishes[i].OrderCount,
				dishes[i].Category,
				dishes[i].ImageURL,
				dishes[i].Description,
				dishes[i].DescriptionEn,
				dishes[i].Ingredients,
				dishes[i].IngredientsEn,
				dishes[i].Nutrition.Calories,
				dishes[i].Nutrition.Protein,
				dishes[i].Nutrition.Fat,
				dishes[i].Nutrition.Carbs,
				dishes[i].IsActive,
			}, nil
		}),
	)
	return err
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	query := `
        INSERT INTO dishes (
            dish_id, name, name_en, price, stock, order_count, category,
            image_url, description, description_en, ingredients,
            ingredients_en, calories, protein, fat, carbs, is_active
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
        )
    `

	_, err := r.pool.Exec(ctx, query,
		dish.DishID,
		dish.Name,
		dish.NameEn,
		dish.Price,
		dish.Stock,
		dish.OrderCount,
		dish.Category,
		dish.ImageURL,
		dish.Description,
		dish.DescriptionEn,
		dish.Ingredients,
		dish.IngredientsEn,
		dish.Nutrition.Calories,
		dish.Nutrition.Protein,
		dish.Nutrition.Fat,
		dish.Nutrition.Carbs,
		dish.IsActive,
	)
	return err
}

func (r *DishRepository) GetAll(ctx context.Context, q repositories.DishQuery) ([]*models.Dish, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if q.Category != "" && q.Category != models.CategoryAll {
		args = append(args, q.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if q.IsActive != nil {
		args = append(args, *q.IsActive)
		where += fmt.Sprintf(" AND is_active = $%d", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dishes"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := q.SortBy
	switch sortBy {
	case "order_count", "price", "created_at":
	default:
		sortBy = "order_count"
	}
	direction := "DESC"
	if q.Order == "asc" {
		direction = "ASC"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}

	query := "SELECT " + dishColumns + " FROM dishes" + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %d OFFSET %d", sortBy, direction, limit, q.Skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	dishes, err := scanDishes(rows)
	if err != nil {
		return nil, 0, err
	}
	return dishes, total, nil
}

func (r *DishRepository) GetByID(ctx context.Context, dishID int) (*models.Dish, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+dishColumns+" FROM dishes WHERE dish_id = $1", dishID)
	dish, err := scanDish(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return dish, err
}

func (r *DishRepository) GetPopular(ctx context.Context, limit int) ([]*models.Dish, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE is_active ORDER BY order_count DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDishes(rows)
}

func (r *DishRepository) Search(ctx context.Context, keyword string) ([]*models.Dish, error) {
	pattern := "%" + keyword + "%"
	rows, err := r.pool.Query(ctx,
		"SELECT "+dishColumns+` FROM dishes
         WHERE name ILIKE $1 OR name_en ILIKE $1 OR description ILIKE $1 OR description_en ILIKE $1
         ORDER BY order_count DESC`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDishes(rows)
}

// UpdateStock adds delta to the stock (negative to decrease). Returns nil
// without error when the dish does not exist.
func (r *DishRepository) UpdateStock(ctx context.Context, dishID, delta int) (*models.Dish, error) {
	tag, err := r.pool.Exec(ctx,
		"UPDATE dishes SET stock = stock + $1, updated_at = now() WHERE dish_id = $2", delta, dishID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, dishID)
}

func (r *DishRepository) IncrementOrderCount(ctx context.Context, dishID int) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE dishes SET order_count = order_count + 1, updated_at = now() WHERE dish_id = $1", dishID)
	return err
}

func (r *DishRepository) Stats(ctx context.Context) (*models.DishStats, error) {
	stats := &models.DishStats{ByCategory: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE is_active),
               COALESCE(SUM(stock), 0),
               COALESCE(SUM(order_count), 0)
        FROM dishes`).Scan(&stats.TotalDishes, &stats.ActiveDishes, &stats.TotalStock, &stats.TotalOrderCount)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, "SELECT category, COUNT(*) FROM dishes GROUP BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ByCategory[category] = count
	}
	return stats, rows.Err()
}

func (r *DishRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dishes").Scan(&count)
	return count, err
}

func (r *DishRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM dishes")
	return err
}

func scanDish(row pgx.Row) (*models.Dish, error) {
	dish := &models.Dish{}
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&dish.DishID,
		&dish.Name,
		&dish.NameEn,
		&dish.Price,
		&dish.Stock,
		&dish.OrderCount,
		&dish.Category,
		&dish.ImageURL,
		&dish.Description,
		&dish.DescriptionEn,
		&dish.Ingredients,
		&dish.IngredientsEn,
		&dish.Nutrition.Calories,
		&dish.Nutrition.Protein,
		&dish.Nutrition.Fat,
		&dish.Nutrition.Carbs,
		&dish.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	dish.CreatedAt = createdAt
	dish.UpdatedAt = updatedAt
	return dish, nil
}

func scanDishes(rows pgx.Rows) ([]*models.Dish, error) {
	var dishes []*models.Dish
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}
