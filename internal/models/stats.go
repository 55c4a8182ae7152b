package models

type DishStats struct {
	TotalDishes     int            `json:"total_dishes"`
	ActiveDishes    int            `json:"active_dishes"`
	TotalStock      int            `json:"total_stock"`
	TotalOrderCount int            `json:"total_order_count"`
	ByCategory      map[string]int `json:"by_category"`
}

type OrderStats struct {
	TotalOrders  int            `json:"total_orders"`
	TotalRevenue float64        `json:"total_revenue"`
	TotalItems   int            `json:"total_items"`
	ByStatus     map[string]int `json:"by_status"`
}
