package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chenmo1212/foodorder/internal/cart"
	"github.com/chenmo1212/foodorder/internal/checkout"
	"github.com/chenmo1212/foodorder/internal/client"
	"github.com/chenmo1212/foodorder/internal/gate"
	"github.com/chenmo1212/foodorder/internal/models"
)

var (
	submitSecret string
	submitDate   string
	submitTime   string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the cart as an order",
	Long:  `submit composes the cart into an order, checks the secret code, creates the order and sends the summary notification. The cart is kept on a failed creation and cleared once the order exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

		delivery := models.DefaultDelivery(time.Now())
		if submitDate != "" {
			date, err := time.ParseInLocation("2006-01-02", submitDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid delivery date %q", submitDate)
			}
			delivery.Date = date
		}
		if submitTime != "" {
			delivery.Time = submitTime
		}
		if err := delivery.Validate(time.Now()); err != nil {
			return err
		}

		c := cart.New(cart.NewFileStore(cfg.CartFilePath))
		flow := checkout.NewFlow(
			c,
			gate.New(cfg.SecretCode),
			client.NewMenuClient(cfg.MenuAPIBaseURL, cfg.RequestTimeout),
			client.NewNotifier(cfg.MessageAPIBaseURL, "https://foodmenu.app", "foodorder-cli", cfg.RequestTimeout),
			checkout.Customer{
				Name:    cfg.CustomerName,
				Email:   cfg.CustomerEmail,
				Phone:   cfg.CustomerPhone,
				Address: cfg.DeliveryAddress,
			},
			cfg.Language,
			logger,
		)

		result, err := flow.Submit(context.Background(), submitSecret, delivery)
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			return fmt.Errorf("cart is empty 🛒")
		case errors.Is(err, checkout.ErrBadSecret):
			return fmt.Errorf("incorrect code, please try again")
		case err != nil:
			fmt.Println("Order failed; your cart is unchanged.")
			return err
		}

		fmt.Printf("Order %s placed for delivery %s at %s.\n",
			result.OrderNumber, delivery.DateString(), delivery.Time)
		if result.NotifyErr != nil {
			fmt.Printf("Notification could not be sent: %v\n", result.NotifyErr)
		} else {
			fmt.Println("Notification sent successfully!")
		}
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitSecret, "secret", "", "The secret code")
	submitCmd.Flags().StringVar(&submitDate, "date", "", "Delivery date (YYYY-MM-DD, default next Monday)")
	submitCmd.Flags().StringVar(&submitTime, "time", "", "Delivery time (HH:MM, default 18:00)")
	rootCmd.AddCommand(submitCmd)
}
