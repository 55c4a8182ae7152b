package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/chenmo1212/foodorder/internal/events"
	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/chenmo1212/foodorder/internal/repositories"
	"github.com/chenmo1212/foodorder/internal/repositories/postgres"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DeliveryDate == "" {
		s.fail(w, http.StatusBadRequest, "Missing required field: delivery_date")
		return
	}
	if req.DeliveryTime == "" {
		s.fail(w, http.StatusBadRequest, "Missing required field: delivery_time")
		return
	}
	if len(req.Items) == 0 {
		s.fail(w, http.StatusBadRequest, "Order must contain at least one item")
		return
	}

	ctx := r.Context()
	var totalAmount float64
	totalItems := 0
	orderItems := make([]*models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		if item.Quantity < 1 {
			s.fail(w, http.StatusBadRequest, "Item quantity must be at least 1")
			return
		}
		totalItems += item.Quantity

		if item.IsCustom {
			name := item.DishName
			if name == "" {
				name = item.CustomNotes
			}
			orderItems = append(orderItems, &models.OrderItem{
				DishID:      0,
				DishName:    name,
				DishNameEn:  name,
				Category:    models.CategoryCustom,
				Price:       0,
				Quantity:    item.Quantity,
				Subtotal:    0,
				IsCustom:    true,
				CustomNotes: item.CustomNotes,
			})
			continue
		}

		dish, err := s.dishes.GetByID(ctx, item.DishID)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, err.Error())
			return
		}
		if dish == nil {
			s.fail(w, http.StatusNotFound, fmt.Sprintf("Dish %d not found", item.DishID))
			return
		}
		if dish.Stock < item.Quantity {
			s.fail(w, http.StatusBadRequest, fmt.Sprintf("Insufficient stock for dish: %s", dish.Name))
			return
		}

		subtotal := dish.Price * float64(item.Quantity)
		totalAmount += subtotal
		orderItems = append(orderItems, &models.OrderItem{
			DishID:      dish.DishID,
			DishName:    dish.Name,
			DishNameEn:  dish.NameEn,
			Category:    dish.Category,
			Price:       dish.Price,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
			CustomNotes: item.CustomNotes,
		})
	}

	order := &models.Order{
		OrderNumber:     postgres.GenerateOrderNumber(time.Now()),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		DeliveryAddress: req.DeliveryAddress,
		TotalAmount:     math.Round(totalAmount*100) / 100,
		TotalItems:      totalItems,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Notes:           req.Notes,
		MarkdownContent: req.MarkdownContent,
		Website:         r.Header.Get("Origin"),
		UserAgent:       r.Header.Get("User-Agent"),
	}

	if err := s.orders.Create(ctx, order, orderItems); err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Stock and popularity move after the order is committed, same as the
	// catalog being informational for in-flight carts.
	for _, item := range orderItems {
		if item.IsCustom {
			continue
		}
		if _, err := s.dishes.UpdateStock(ctx, item.DishID, -item.Quantity); err != nil {
			s.log.Error("failed to update stock", "dish_id", item.DishID, "error", err)
		}
		if err := s.dishes.IncrementOrderCount(ctx, item.DishID); err != nil {
			s.log.Error("failed to bump order count", "dish_id", item.DishID, "error", err)
		}
	}

	s.publishOrderEvent(order)

	created, err := s.orders.GetByNumber(ctx, order.OrderNumber)
	if err != nil || created == nil {
		created = order
	}
	items, err := s.orders.GetItemsByNumber(ctx, order.OrderNumber)
	if err != nil {
		items = orderItems
	}

	s.ok(w, http.StatusCreated, map[string]interface{}{
		"order": created,
		"items": items,
	})
}

func (s *Server) publishOrderEvent(order *models.Order) {
	if s.events == nil {
		return
	}
	event := events.OrderEvent{
		Type:        events.OrderPlaced,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		TotalItems:  order.TotalItems,
		Status:      order.Status,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.events.Publish(event); err != nil {
		s.log.Error("failed to publish order event", "order_number", order.OrderNumber, "error", err)
	}
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := repositories.OrderQuery{
		CustomerEmail: r.URL.Query().Get("customer_email"),
		Status:        r.URL.Query().Get("status"),
		DeliveryDate:  r.URL.Query().Get("delivery_date"),
		Limit:         intParam(r, "limit", 50),
		Skip:          intParam(r, "skip", 0),
	}

	orders, total, err := s.orders.GetAll(r.Context(), q)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    orders,
		"total":   total,
		"limit":   q.Limit,
		"skip":    q.Skip,
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := s.orders.GetByNumber(r.Context(), orderNumber)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if order == nil {
		s.fail(w, http.StatusNotFound, "Order not found")
		return
	}
	items, err := s.orders.GetItemsByNumber(r.Context(), orderNumber)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.ok(w, http.StatusOK, map[string]interface{}{
		"order": order,
		"items": items,
	})
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.IsValidOrderStatus(body.Status) {
		s.fail(w, http.StatusBadRequest, fmt.Sprintf("Invalid status: %s", body.Status))
		return
	}

	order, err := s.orders.UpdateStatus(r.Context(), orderNumber, body.Status)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if order == nil {
		s.fail(w, http.StatusNotFound, "Order not found")
		return
	}
	s.ok(w, http.StatusOK, order)
}

// handleCancelOrder cancels a pending or confirmed order and puts the stock
// back for its catalog items.
func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	ctx := r.Context()

	order, err := s.orders.GetByNumber(ctx, orderNumber)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if order == nil {
		s.fail(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusConfirmed {
		s.fail(w, http.StatusBadRequest, fmt.Sprintf("Cannot cancel order in status: %s", order.Status))
		return
	}

	cancelled, err := s.orders.UpdateStatus(ctx, orderNumber, models.OrderStatusCancelled)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	items, err := s.orders.GetItemsByNumber(ctx, orderNumber)
	if err == nil {
		for _, item := range items {
			if item.IsCustom {
				continue
			}
			if _, err := s.dishes.UpdateStock(ctx, item.DishID, item.Quantity); err != nil {
				s.log.Error("failed to restore stock", "dish_id", item.DishID, "error", err)
			}
		}
	}

	s.ok(w, http.StatusOK, cancelled)
}

func (s *Server) handleOrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.orders.Stats(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.ok(w, http.StatusOK, stats)
}
