package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenmo1212/foodorder/internal/cart"
	"github.com/chenmo1212/foodorder/internal/models"
)

var (
	cartNotes string
	cartQty   int
	cartDelta int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <dish-id>",
	Short: "Add a dish to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		dishID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid dish id %q", args[0])
		}

		store := loadCatalog(cfg)
		dish, ok := store.ByID(dishID)
		if !ok {
			return fmt.Errorf("dish %d not found", dishID)
		}

		c := cart.New(cart.NewFileStore(cfg.CartFilePath))
		for i := 0; i < cartQty; i++ {
			c.Add(dish.CartItem(), cartNotes)
		}
		fmt.Printf("Added %s x%d.\n", dish.NameEn, cartQty)
		printCart(c)
		return nil
	},
}

var cartAddCustomCmd = &cobra.Command{
	Use:   "add-custom <name>",
	Short: "Add an off-menu request to the cart",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("please enter a dish name")
		}

		c := cart.New(cart.NewFileStore(cfg.CartFilePath))
		c.Add(models.NewCustomItem(name), cartNotes)
		fmt.Printf("Added custom request %q.\n", name)
		printCart(c)
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Change the quantity of a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		c := cart.New(cart.NewFileStore(cfg.CartFilePath))
		c.UpdateQuantity(models.LineKey{ItemID: args[0], Instructions: cartNotes}, cartDelta)
		printCart(c)
		return nil
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		printCart(cart.New(cart.NewFileStore(cfg.CartFilePath)))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := cart.New(cart.NewFileStore(cfg.CartFilePath))
		c.Clear()
		fmt.Println("Cart cleared.")
		return nil
	},
}

func printCart(c *cart.Cart) {
	lines := c.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for _, l := range lines {
		marker := ""
		if l.Item.IsCustom {
			marker = " (custom)"
		}
		fmt.Printf("  %-12s %-30s x%d%s", l.Item.ID, l.Item.NameEn, l.Quantity, marker)
		if l.Instructions != "" {
			fmt.Printf("  [%s]", l.Instructions)
		}
		fmt.Println()
	}
	fmt.Printf("  %d lines, %d items, subtotal $%.2f\n", c.Len(), c.TotalQuantity(), c.Subtotal())
}

func init() {
	cartAddCmd.Flags().StringVar(&cartNotes, "notes", "", "Special instructions for this line")
	cartAddCmd.Flags().IntVar(&cartQty, "qty", 1, "How many to add")
	cartAddCustomCmd.Flags().StringVar(&cartNotes, "notes", "", "Special instructions for this line")
	cartUpdateCmd.Flags().StringVar(&cartNotes, "notes", "", "Special instructions identifying the line")
	cartUpdateCmd.Flags().IntVar(&cartDelta, "delta", -1, "Quantity change (negative to remove)")

	cartCmd.AddCommand(cartAddCmd, cartAddCustomCmd, cartUpdateCmd, cartShowCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
