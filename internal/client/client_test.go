package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenmo1212/foodorder/internal/models"
)

func TestFetchDishes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/dishes", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "order_count", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []models.Dish{
				{DishID: 1, NameEn: "Mapo Tofu", Category: models.CategoryPork},
			},
			"total": 1,
		})
	}))
	defer srv.Close()

	c := NewMenuClient(srv.URL, time.Second)
	dishes, err := c.FetchDishes(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Mapo Tofu", dishes[0].NameEn)
}

func TestFetchDishesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "database unavailable"})
	}))
	defer srv.Close()

	_, err := NewMenuClient(srv.URL, time.Second).FetchDishes(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "database unavailable")
}

func TestFetchDishesErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	_, err := NewMenuClient(srv.URL, time.Second).FetchDishes(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "HTTP error! status: 502")
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var req models.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-06-10", req.DeliveryDate)
		require.Len(t, req.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"order": models.Order{OrderNumber: "ORD202406051030001234"},
				"items": []models.OrderItem{{DishName: "Mapo Tofu", Quantity: 2}},
			},
		})
	}))
	defer srv.Close()

	c := NewMenuClient(srv.URL, time.Second)
	conf, err := c.CreateOrder(context.Background(), models.OrderRequest{
		DeliveryDate: "2024-06-10",
		DeliveryTime: "19:30",
		Items:        []models.OrderItemRequest{{DishID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD202406051030001234", conf.OrderNumber)
	require.Len(t, conf.Items, 1)
}

func TestCreateOrderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Insufficient stock for dish: Mapo Tofu"})
	}))
	defer srv.Close()

	_, err := NewMenuClient(srv.URL, time.Second).CreateOrder(context.Background(), models.OrderRequest{})
	require.Error(t, err)
	assert.EqualError(t, err, "Insufficient stock for dish: Mapo Tofu")
}

func TestSendOrderNotification(t *testing.T) {
	var got models.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"status": 200, "data": map[string]any{"id": "m1"}})
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, "foodmenu.app", "cli", time.Second)
	n.now = func() time.Time { return time.Date(2024, 6, 5, 10, 30, 0, 0, time.UTC) }

	err := n.SendOrderNotification(context.Background(), "# Order Summary", "2024-06-10 19:30")
	require.NoError(t, err)

	assert.Equal(t, "Food Order System", got.Name)
	assert.Equal(t, "order@foodmenu.app", got.Email)
	assert.Contains(t, got.Content, "🍕 New Order!")
	assert.Contains(t, got.Content, "📅 Delivery: 2024-06-10 19:30")
	assert.Contains(t, got.Content, "# Order Summary")
	assert.True(t, got.IsShow)
	assert.Equal(t, time.Date(2024, 6, 5, 10, 30, 0, 0, time.UTC), got.CreateTime)
}

func TestSendOrderNotificationFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 but a failing body status still counts as a failure
		json.NewEncoder(w).Encode(map[string]any{"status": 500, "error": "relay down"})
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, "foodmenu.app", "cli", time.Second)
	err := n.SendOrderNotification(context.Background(), "summary", "info")
	require.Error(t, err)
	assert.EqualError(t, err, "relay down")
}
