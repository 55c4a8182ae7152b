package models

import "time"

type Order struct {
	OrderNumber      string    `json:"order_number"`
	CustomerName     string    `json:"customer_name"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerPhone    string    `json:"customer_phone"`
	DeliveryDate     string    `json:"delivery_date"`
	DeliveryTime     string    `json:"delivery_time"`
	DeliveryAddress  string    `json:"delivery_address"`
	TotalAmount      float64   `json:"total_amount"`
	TotalItems       int       `json:"total_items"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentMethod    string    `json:"payment_method"`
	Notes            string    `json:"notes"`
	MarkdownContent  string    `json:"markdown_content"`
	Website          string    `json:"website"`
	UserAgent        string    `json:"user_agent"`
	NotificationSent bool      `json:"notification_sent"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrderItem struct {
	OrderNumber string    `json:"order_number"`
	DishID      int       `json:"dish_id"`
	DishName    string    `json:"dish_name"`
	DishNameEn  string    `json:"dish_name_en"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Subtotal    float64   `json:"subtotal"`
	IsCustom    bool      `json:"is_custom"`
	CustomNotes string    `json:"custom_notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderItemRequest is one line of an order submission. Custom requests carry
// dish_id 0 and their display name in dish_name; catalog lines are resolved
// server side and dish_name is ignored for them.
type OrderItemRequest struct {
	DishID      int    `json:"dish_id"`
	DishName    string `json:"dish_name,omitempty"`
	Quantity    int    `json:"quantity"`
	IsCustom    bool   `json:"is_custom"`
	CustomNotes string `json:"custom_notes"`
}

type OrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	DeliveryDate    string             `json:"delivery_date"`
	DeliveryTime    string             `json:"delivery_time"`
	DeliveryAddress string             `json:"delivery_address"`
	Notes           string             `json:"notes"`
	MarkdownContent string             `json:"markdown_content"`
	Items           []OrderItemRequest `json:"items"`
}
