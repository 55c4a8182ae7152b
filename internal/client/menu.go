// Package client wraps the remote menu and message services. Both speak
// JSON over HTTP with a {success, data, error} envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/chenmo1212/foodorder/internal/models"
)

type MenuClient struct {
	baseURL string
	http    *http.Client
}

func NewMenuClient(baseURL string, timeout time.Duration) *MenuClient {
	return &MenuClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type dishesResponse struct {
	Success bool          `json:"success"`
	Data    []models.Dish `json:"data"`
	Total   int           `json:"total"`
	Error   string        `json:"error"`
}

type orderResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Order models.Order       `json:"order"`
		Items []models.OrderItem `json:"items"`
	} `json:"data"`
	Error string `json:"error"`
}

// FetchDishes loads the full active catalog, pre-sorted by popularity the
// same way the client would sort it anyway.
func (c *MenuClient) FetchDishes(ctx context.Context) ([]models.Dish, error) {
	q := url.Values{}
	q.Set("limit", "100")
	q.Set("sort_by", "order_count")
	q.Set("order", "desc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dishes?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu api request failed: %w", err)
	}
	defer resp.Body.Close()

	var body dishesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("menu api returned invalid response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !body.Success {
		return nil, apiError(resp.StatusCode, body.Error)
	}
	return body.Data, nil
}

// OrderConfirmation carries the server-assigned identity of a created order.
type OrderConfirmation struct {
	OrderNumber string
	Order       models.Order
	Items       []models.OrderItem
}

// CreateOrder submits the composed order. On a non-success response the
// server-provided message is surfaced when present.
func (c *MenuClient) CreateOrder(ctx context.Context, order models.OrderRequest) (*OrderConfirmation, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	var body orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("order api returned invalid response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated || !body.Success {
		return nil, apiError(resp.StatusCode, body.Error)
	}
	return &OrderConfirmation{
		OrderNumber: body.Data.Order.OrderNumber,
		Order:       body.Data.Order,
		Items:       body.Data.Items,
	}, nil
}

func apiError(status int, msg string) error {
	if msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("HTTP error! status: %d", status)
}
