package models

const (
	CategoryAll        = "All"
	CategoryPork       = "Pork"
	CategoryChicken    = "Chicken"
	CategorySeafood    = "Seafood"
	CategoryVegetables = "Vegetables"
	CategoryOther      = "Other"
	CategoryCustom     = "Custom"

	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

var DishCategories = []string{
	CategoryPork,
	CategoryChicken,
	CategorySeafood,
	CategoryVegetables,
	CategoryOther,
}

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusDelivering,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
