package postgres

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/chenmo1212/foodorder/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// GenerateOrderNumber produces ORD{yyyymmddhhmmss}{4-digit random}. The
// unique constraint on order_number catches the unlikely collision.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%s%04d", now.Format("20060102150405"), 1000+rand.Intn(9000))
}

const orderColumns = `
    order_number, customer_name, customer_email, customer_phone,
    delivery_date, delivery_time, delivery_address, total_amount, total_items,
    status, payment_status, payment_method, notes, markdown_content,
    website, user_agent, notification_sent, created_at, updated_at
`

// Create inserts the order and its items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO orders (
            order_number, customer_name, customer_email, customer_phone,
            delivery_date, delivery_time, delivery_address, total_amount,
            total_items, status, payment_status, payment_method, notes,
            markdown_content, website, user_agent, notification_sent
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
        )`,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.DeliveryDate,
		order.DeliveryTime,
		order.DeliveryAddress,
		order.TotalAmount,
		order.TotalItems,
		order.Status,
		order.PaymentStatus,
		order.PaymentMethod,
		order.Notes,
		order.MarkdownContent,
		order.Website,
		order.UserAgent,
		order.NotificationSent,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, `
            INSERT INTO order_items (
                order_number, dish_id, dish_name, dish_name_en, category,
                price, quantity, subtotal, is_custom, custom_notes
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			order.OrderNumber,
			item.DishID,
			item.DishName,
			item.DishNameEn,
			item.Category,
			item.Price,
			item.Quantity,
			item.Subtotal,
			item.IsCustom,
			item.CustomNotes,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetAll(ctx context.Context, q repositories.OrderQuery) ([]*models.Order, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if q.CustomerEmail != "" {
		args = append(args, q.CustomerEmail)
		where += fmt.Sprintf(" AND customer_email = $%d", len(args))
	}
	if q.Status != "" {
		args = append(args, q.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if q.DeliveryDate != "" {
		args = append(args, q.DeliveryDate)
		where += fmt.Sprintf(" AND delivery_date = $%d", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	query := "SELECT " + orderColumns + " FROM orders" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d OFFSET %d", limit, q.Skip)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_number = $1", orderNumber)
	order, err := scanOrder(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return order, err
}

func (r *OrderRepository) GetItemsByNumber(ctx context.Context, orderNumber string) ([]*models.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT order_number, dish_id, dish_name, dish_name_en, category,
               price, quantity, subtotal, is_custom, custom_notes, created_at
        FROM order_items WHERE order_number = $1 ORDER BY id`, orderNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		err := rows.Scan(
			&item.OrderNumber,
			&item.DishID,
			&item.DishName,
			&item.DishNameEn,
			&item.Category,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
			&item.IsCustom,
			&item.CustomNotes,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus moves an order to a new status. Returns nil without error
// when the order does not exist.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderNumber, status string) (*models.Order, error) {
	tag, err := r.pool.Exec(ctx,
		"UPDATE orders SET status = $1, updated_at = now() WHERE order_number = $2", status, orderNumber)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByNumber(ctx, orderNumber)
}

func (r *OrderRepository) Stats(ctx context.Context) (*models.OrderStats, error) {
	stats := &models.OrderStats{ByStatus: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
        SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(total_items), 0)
        FROM orders`).Scan(&stats.TotalOrders, &stats.TotalRevenue, &stats.TotalItems)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	return stats, rows.Err()
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.DeliveryDate,
		&order.DeliveryTime,
		&order.DeliveryAddress,
		&order.TotalAmount,
		&order.TotalItems,
		&order.Status,
		&order.PaymentStatus,
		&order.PaymentMethod,
		&order.Notes,
		&order.MarkdownContent,
		&order.Website,
		&order.UserAgent,
		&order.NotificationSent,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
