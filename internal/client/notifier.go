package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chenmo1212/foodorder/internal/models"
)

// Notifier forwards rendered order summaries to the message service, which
// relays them onward (WeChat, originally). A notify failure never undoes a
// created order.
type Notifier struct {
	baseURL string
	website string
	agent   string
	http    *http.Client
	now     func() time.Time
}

func NewNotifier(baseURL, website, agent string, timeout time.Duration) *Notifier {
	return &Notifier{
		baseURL: baseURL,
		website: website,
		agent:   agent,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type messageResponse struct {
	Status int `json:"status"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
	Error string `json:"error"`
}

// SendOrderNotification posts the markdown summary wrapped in the message
// body the service expects. Success is status 200 in the response body.
func (n *Notifier) SendOrderNotification(ctx context.Context, summary, deliveryInfo string) error {
	msg := models.Message{
		Name:       "Food Order System",
		Email:      "order@foodmenu.app",
		Content:    fmt.Sprintf("🍕 New Order!\n\n📅 Delivery: %s\n\n%s", deliveryInfo, summary),
		Website:    n.website,
		Agent:      n.agent,
		CreateTime: n.now().UTC(),
		IsShow:     true,
		IsDelete:   false,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	var body messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("message api returned invalid response: %w", err)
	}
	if body.Status != http.StatusOK {
		if body.Error != "" {
			return fmt.Errorf("%s", body.Error)
		}
		return fmt.Errorf("failed to send order notification (status %d)", body.Status)
	}
	return nil
}
