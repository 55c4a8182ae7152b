package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/chenmo1212/foodorder/internal/events"
	"github.com/chenmo1212/foodorder/internal/repositories/postgres"
	"github.com/chenmo1212/foodorder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the menu API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database_url is required")
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			return err
		}

		var publisher events.Publisher
		if cfg.KafkaEnabled {
			kp, err := events.NewKafkaPublisher(cfg.KafkaBrokerList, cfg.KafkaTopic)
			if err != nil {
				return fmt.Errorf("create kafka publisher: %w", err)
			}
			defer kp.Close()
			publisher = kp
		}

		srv := server.New(
			postgres.NewDishRepository(pool),
			postgres.NewOrderRepository(pool),
			postgres.NewMessageRepository(pool),
			publisher,
			pool,
			cfg.WebhookURL,
			logger,
		)

		logger.Info("menu api listening", "addr", cfg.ListenAddr)
		return http.ListenAndServe(cfg.ListenAddr, srv.Router())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
