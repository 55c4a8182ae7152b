package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/chenmo1212/foodorder/internal/catalog"
	"github.com/chenmo1212/foodorder/internal/client"
	"github.com/chenmo1212/foodorder/internal/models"
)

var (
	menuCategory string
	menuSearch   string
	menuOffline  bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse the dish menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store := loadCatalog(cfg)

		dishes := store.Filter(menuCategory, menuSearch)
		if len(dishes) == 0 {
			fmt.Println("No dishes match.")
			return nil
		}

		for _, d := range dishes {
			name := d.Name
			if cfg.Language == "en" && d.NameEn != "" {
				name = d.NameEn
			}
			fmt.Printf("%3d  %-35s %-12s $%6.2f  stock %2d  ordered %d\n",
				d.DishID, name, d.Category, d.Price, d.Stock, d.OrderCount)
		}
		return nil
	},
}

// loadCatalog loads the remote menu once and falls back to the bundled
// dishes when the catalog service is unreachable.
func loadCatalog(cfg *models.Config) *catalog.Store {
	store := catalog.NewStore()
	if menuOffline {
		return store
	}
	menuClient := client.NewMenuClient(cfg.MenuAPIBaseURL, cfg.RequestTimeout)
	if err := store.Load(context.Background(), menuClient); err != nil {
		log.Printf("menu: falling back to bundled dishes: %v", err)
	}
	return store
}

func init() {
	menuCmd.Flags().StringVar(&menuCategory, "category", models.CategoryAll, "Filter by category")
	menuCmd.Flags().StringVar(&menuSearch, "search", "", "Search name, description and ingredients")
	menuCmd.Flags().BoolVar(&menuOffline, "offline", false, "Skip the remote catalog and use the bundled menu")
	rootCmd.AddCommand(menuCmd)
}
