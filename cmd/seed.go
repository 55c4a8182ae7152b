package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/chenmo1212/foodorder/internal/catalog"
	"github.com/chenmo1212/foodorder/internal/factories"
	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/chenmo1212/foodorder/internal/repositories/postgres"
)

var seedCount int
var seedFresh bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled menu into the database",
	Long:  `seed inserts the bundled dish set, optionally padded with generated dishes up to --count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
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

		repo := postgres.NewDishRepository(pool)
		if seedFresh {
			if err := repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clear dishes: %w", err)
			}
		}

		dishes := make([]*models.Dish, 0, seedCount)
		for i := range catalog.BundledDishes {
			d := catalog.BundledDishes[i]
			dishes = append(dishes, &d)
		}

		factory := &factories.DishFactory{}
		for id := len(dishes) + 1; len(dishes) < seedCount; id++ {
			d := factory.CreateDish(id)
			dishes = append(dishes, &d)
		}

		bar := progressbar.Default(int64(len(dishes)), "seeding dishes")
		// CopyFrom does the whole batch in one round trip; the bar only
		// tracks batches for large pads.
		const batch = 50
		for start := 0; start < len(dishes); start += batch {
			end := start + batch
			if end > len(dishes) {
				end = len(dishes)
			}
			if err := repo.BulkCreate(ctx, dishes[start:end]); err != nil {
				return fmt.Errorf("seed dishes: %w", err)
			}
			bar.Add(end - start)
		}

		fmt.Printf("Seeded %d dishes.\n", len(dishes))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", len(catalog.BundledDishes), "Total number of dishes to seed")
	seedCmd.Flags().BoolVar(&seedFresh, "fresh", false, "Delete existing dishes first")
	rootCmd.AddCommand(seedCmd)
}
