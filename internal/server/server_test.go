package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/chenmo1212/foodorder/internal/repositories"
)

type fakeDishRepo struct {
	dishes map[int]*models.Dish
}

func newFakeDishRepo(dishes ...*models.Dish) *fakeDishRepo {
	r := &fakeDishRepo{dishes: map[int]*models.Dish{}}
	for _, d := range dishes {
		r.dishes[d.DishID] = d
	}
	return r
}

func (r *fakeDishRepo) BulkCreate(_ context.Context, dishes []*models.Dish) error {
	for _, d := range dishes {
		r.dishes[d.DishID] = d
	}
	return nil
}

func (r *fakeDishRepo) Create(_ context.Context, dish *models.Dish) error {
	r.dishes[dish.DishID] = dish
	return nil
}

func (r *fakeDishRepo) sorted() []*models.Dish {
	out := make([]*models.Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderCount > out[j].OrderCount })
	return out
}

func (r *fakeDishRepo) GetAll(_ context.Context, q repositories.DishQuery) ([]*models.Dish, int, error) {
	var out []*models.Dish
	for _, d := range r.sorted() {
		if q.Category != "" && d.Category != q.Category {
			continue
		}
		out = append(out, d)
	}
	return out, len(out), nil
}

func (r *fakeDishRepo) GetByID(_ context.Context, dishID int) (*models.Dish, error) {
	return r.dishes[dishID], nil
}

func (r *fakeDishRepo) GetPopular(_ context.Context, limit int) ([]*models.Dish, error) {
	out := r.sorted()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDishRepo) Search(_ context.Context, keyword string) ([]*models.Dish, error) {
	var out []*models.Dish
	for _, d := range r.sorted() {
		if strings.Contains(strings.ToLower(d.NameEn), strings.ToLower(keyword)) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDishRepo) UpdateStock(_ context.Context, dishID, delta int) (*models.Dish, error) {
	d, ok := r.dishes[dishID]
	if !ok {
		return nil, nil
	}
	d.Stock += delta
	return d, nil
}

func (r *fakeDishRepo) IncrementOrderCount(_ context.Context, dishID int) error {
	if d, ok := r.dishes[dishID]; ok {
		d.OrderCount++
	}
	return nil
}

func (r *fakeDishRepo) Stats(context.Context) (*models.DishStats, error) {
	return &models.DishStats{TotalDishes: len(r.dishes)}, nil
}

func (r *fakeDishRepo) Count(context.Context) (int, error) { return len(r.dishes), nil }

func (r *fakeDishRepo) DeleteAll(context.Context) error {
	r.dishes = map[int]*models.Dish{}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
	items  map[string][]*models.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[string]*models.Order{},
		items:  map[string][]*models.OrderItem{},
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order, items []*models.OrderItem) error {
	r.orders[order.OrderNumber] = order
	for _, item := range items {
		item.OrderNumber = order.OrderNumber
	}
	r.items[order.OrderNumber] = items
	return nil
}

func (r *fakeOrderRepo) GetAll(context.Context, repositories.OrderQuery) ([]*models.Order, int, error) {
	var out []*models.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (r *fakeOrderRepo) GetByNumber(_ context.Context, orderNumber string) (*models.Order, error) {
	return r.orders[orderNumber], nil
}

func (r *fakeOrderRepo) GetItemsByNumber(_ context.Context, orderNumber string) ([]*models.OrderItem, error) {
	return r.items[orderNumber], nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderNumber, status string) (*models.Order, error) {
	o, ok := r.orders[orderNumber]
	if !ok {
		return nil, nil
	}
	o.Status = status
	return o, nil
}

func (r *fakeOrderRepo) Stats(context.Context) (*models.OrderStats, error) {
	return &models.OrderStats{TotalOrders: len(r.orders)}, nil
}

type fakeMessageRepo struct {
	messages []*models.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = "msg-1"
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeMessageRepo) GetAll(context.Context, int, int) ([]*models.Message, int, error) {
	return r.messages, len(r.messages), nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func menuDishes() []*models.Dish {
	return []*models.Dish{
		{DishID: 1, Name: "麻婆豆腐", NameEn: "Mapo Tofu", Price: 12.99, Stock: 50, OrderCount: 45, Category: models.CategoryPork, IsActive: true},
		{DishID: 5, Name: "白灼西兰花", NameEn: "Blanched Broccoli", Price: 8.99, Stock: 2, OrderCount: 60, Category: models.CategoryVegetables, IsActive: true},
	}
}

type testEnv struct {
	dishes   *fakeDishRepo
	orders   *fakeOrderRepo
	messages *fakeMessageRepo
	handler  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		dishes:   newFakeDishRepo(menuDishes()...),
		orders:   newFakeOrderRepo(),
		messages: &fakeMessageRepo{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.handler = New(env.dishes, env.orders, env.messages, nil, okPinger{}, "", logger).Router()
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestListDishes(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/dishes?sort_by=order_count&order=desc", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["total"])

	data := body["data"].([]any)
	first := data[0].(map[string]any)
	assert.Equal(t, "Blanched Broccoli", first["name_en"])
}

func TestGetDishNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/dishes/404", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Dish not found", body["error"])
}

func TestSearchRequiresKeyword(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/dishes/search", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/dishes/search?q=tofu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["total"])
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	req := models.OrderRequest{
		CustomerName: "Chen",
		DeliveryDate: "2024-06-10",
		DeliveryTime: "19:30",
		Items: []models.OrderItemRequest{
			{DishID: 1, Quantity: 2},
			{IsCustom: true, DishName: "Grandma's dumplings", Quantity: 1, CustomNotes: "steamed"},
		},
	}

	rec := env.do(t, http.MethodPost, "/orders", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	order := data["order"].(map[string]any)

	number := order["order_number"].(string)
	assert.True(t, strings.HasPrefix(number, "ORD"))
	assert.Len(t, number, 21)
	assert.Equal(t, models.OrderStatusPending, order["status"])
	assert.Equal(t, models.PaymentStatusUnpaid, order["payment_status"])
	assert.InDelta(t, 25.98, order["total_amount"].(float64), 0.001)
	assert.EqualValues(t, 3, order["total_items"])

	items := data["items"].([]any)
	require.Len(t, items, 2)
	custom := items[1].(map[string]any)
	assert.Equal(t, true, custom["is_custom"])
	assert.Equal(t, "Grandma's dumplings", custom["dish_name"])
	assert.EqualValues(t, 0, custom["price"])

	// the committed order moves stock and popularity
	assert.Equal(t, 48, env.dishes.dishes[1].Stock)
	assert.Equal(t, 46, env.dishes.dishes[1].OrderCount)
}

func TestCreateOrderValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/orders", models.OrderRequest{DeliveryTime: "19:30", Items: []models.OrderItemRequest{{DishID: 1, Quantity: 1}}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required field: delivery_date", decode(t, rec)["error"])

	rec = env.do(t, http.MethodPost, "/orders", models.OrderRequest{DeliveryDate: "2024-06-10", DeliveryTime: "19:30"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Order must contain at least one item", decode(t, rec)["error"])
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	req := models.OrderRequest{
		DeliveryDate: "2024-06-10",
		DeliveryTime: "19:30",
		Items:        []models.OrderItemRequest{{DishID: 5, Quantity: 3}},
	}

	rec := env.do(t, http.MethodPost, "/orders", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Insufficient stock for dish: 白灼西兰花", decode(t, rec)["error"])
	assert.Empty(t, env.orders.orders)
}

func TestCreateOrderUnknownDish(t *testing.T) {
	env := newTestEnv(t)
	req := models.OrderRequest{
		DeliveryDate: "2024-06-10",
		DeliveryTime: "19:30",
		Items:        []models.OrderItemRequest{{DishID: 404, Quantity: 1}},
	}

	rec := env.do(t, http.MethodPost, "/orders", req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Dish 404 not found", decode(t, rec)["error"])
}

func createOrder(t *testing.T, env *testEnv) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/orders", models.OrderRequest{
		DeliveryDate: "2024-06-10",
		DeliveryTime: "19:30",
		Items:        []models.OrderItemRequest{{DishID: 1, Quantity: 2}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	return data["order"].(map[string]any)["order_number"].(string)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	number := createOrder(t, env)

	rec := env.do(t, http.MethodPatch, "/orders/"+number+"/status", map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, models.OrderStatusConfirmed, data["status"])

	rec = env.do(t, http.MethodPatch, "/orders/"+number+"/status", map[string]string{"status": "teleported"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status: teleported", decode(t, rec)["error"])
}

func TestCancelOrderRestoresStock(t *testing.T) {
	env := newTestEnv(t)
	number := createOrder(t, env)
	require.Equal(t, 48, env.dishes.dishes[1].Stock)

	rec := env.do(t, http.MethodDelete, "/orders/"+number, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50, env.dishes.dishes[1].Stock)
	assert.Equal(t, models.OrderStatusCancelled, env.orders.orders[number].Status)

	// only pending and confirmed orders can be cancelled
	rec = env.do(t, http.MethodDelete, "/orders/"+number, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot cancel order in status: cancelled", decode(t, rec)["error"])
}

func TestCreateMessageEnvelope(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/messages", models.Message{
		Name:    "Food Order System",
		Content: "🍕 New Order!",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 200, body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "msg-1", data["id"])

	require.Len(t, env.messages.messages, 1)
	assert.False(t, env.messages.messages[0].CreateTime.IsZero())
}

func TestCreateMessageRequiresContent(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/messages", models.Message{Name: "nobody"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 400, body["status"])
	assert.Equal(t, "Missing required field: content", body["error"])
}
