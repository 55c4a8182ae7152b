package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema for the three backing collections: dishes, orders, order_items,
// plus the notification intake. Field validation lives in CHECK constraints
// and the lookup paths are covered by indexes.
const schema = `
CREATE TABLE IF NOT EXISTS dishes (
    dish_id        INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    name_en        TEXT NOT NULL,
    price          DOUBLE PRECISION NOT NULL CHECK (price >= 0),
    stock          INTEGER NOT NULL CHECK (stock >= 0),
    order_count    INTEGER NOT NULL DEFAULT 0 CHECK (order_count >= 0),
    category       TEXT NOT NULL CHECK (category IN ('Pork', 'Chicken', 'Seafood', 'Vegetables', 'Other')),
    image_url      TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL,
    description_en TEXT NOT NULL,
    ingredients    TEXT[] NOT NULL,
    ingredients_en TEXT[] NOT NULL,
    calories       INTEGER NOT NULL DEFAULT 0 CHECK (calories >= 0),
    protein        TEXT NOT NULL DEFAULT '',
    fat            TEXT NOT NULL DEFAULT '',
    carbs          TEXT NOT NULL DEFAULT '',
    is_active      BOOLEAN NOT NULL DEFAULT TRUE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_dishes_category_active ON dishes (category, is_active);
CREATE INDEX IF NOT EXISTS idx_dishes_order_count_desc ON dishes (order_count DESC);
CREATE INDEX IF NOT EXISTS idx_dishes_price ON dishes (price);

CREATE TABLE IF NOT EXISTS orders (
    id                SERIAL PRIMARY KEY,
    order_number      TEXT NOT NULL UNIQUE,
    customer_name     TEXT NOT NULL DEFAULT '',
    customer_email    TEXT NOT NULL DEFAULT '',
    customer_phone    TEXT NOT NULL DEFAULT '',
    delivery_date     TEXT NOT NULL,
    delivery_time     TEXT NOT NULL,
    delivery_address  TEXT NOT NULL DEFAULT '',
    total_amount      DOUBLE PRECISION NOT NULL CHECK (total_amount >= 0),
    total_items       INTEGER NOT NULL CHECK (total_items >= 1),
    status            TEXT NOT NULL DEFAULT 'pending'
                      CHECK (status IN ('pending', 'confirmed', 'preparing', 'delivering', 'completed', 'cancelled')),
    payment_status    TEXT NOT NULL DEFAULT 'unpaid'
                      CHECK (payment_status IN ('unpaid', 'paid', 'refunded')),
    payment_method    TEXT NOT NULL DEFAULT '',
    notes             TEXT NOT NULL DEFAULT '',
    markdown_content  TEXT NOT NULL DEFAULT '',
    website           TEXT NOT NULL DEFAULT '',
    user_agent        TEXT NOT NULL DEFAULT '',
    notification_sent BOOLEAN NOT NULL DEFAULT FALSE,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders (customer_email);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status);
CREATE INDEX IF NOT EXISTS idx_orders_delivery_date ON orders (delivery_date);
CREATE INDEX IF NOT EXISTS idx_orders_created_at_desc ON orders (created_at DESC);

CREATE TABLE IF NOT EXISTS order_items (
    id           SERIAL PRIMARY KEY,
    order_number TEXT NOT NULL REFERENCES orders (order_number),
    dish_id      INTEGER NOT NULL,
    dish_name    TEXT NOT NULL,
    dish_name_en TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    price        DOUBLE PRECISION NOT NULL CHECK (price >= 0),
    quantity     INTEGER NOT NULL CHECK (quantity >= 1),
    subtotal     DOUBLE PRECISION NOT NULL CHECK (subtotal >= 0),
    is_custom    BOOLEAN NOT NULL DEFAULT FALSE,
    custom_notes TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_order_items_order_number ON order_items (order_number);
CREATE INDEX IF NOT EXISTS idx_order_items_dish_id ON order_items (dish_id);

CREATE TABLE IF NOT EXISTS messages (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL DEFAULT '',
    content     TEXT NOT NULL,
    website     TEXT NOT NULL DEFAULT '',
    agent       TEXT NOT NULL DEFAULT '',
    create_time TIMESTAMPTZ NOT NULL DEFAULT now(),
    is_show     BOOLEAN NOT NULL DEFAULT TRUE,
    is_delete   BOOLEAN NOT NULL DEFAULT FALSE
);
`

// EnsureSchema creates all tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
