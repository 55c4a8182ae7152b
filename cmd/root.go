package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chenmo1212/foodorder/internal/models"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodorder",
	Short: "Food menu ordering system",
	Long:  `foodorder is a food ordering system: a browsable dish menu with a cart and delivery-slot picker on the client side, and the dish/order/message API with its postgres backing store on the server side.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	rootCmd.PersistentFlags().String("menu-api-base-url", "https://api.chenmo1212.cn/menu", "Base URL of the menu API")
	rootCmd.PersistentFlags().String("message-api-base-url", "https://api.chenmo1212.cn/message", "Base URL of the message API")
	rootCmd.PersistentFlags().String("secret-code", "", "Shared secret gating order submission")
	rootCmd.PersistentFlags().String("cart-file-path", "cart.json", "Path of the persisted cart file")
	rootCmd.PersistentFlags().String("language", "en", "Display language (en or zh)")
	rootCmd.PersistentFlags().String("listen-addr", ":8080", "Server listen address")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection string")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Enable Kafka order events")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().String("kafka-topic", "food_order_events", "Kafka topic for order events")

	viper.BindPFlag("menu_api_base_url", rootCmd.PersistentFlags().Lookup("menu-api-base-url"))
	viper.BindPFlag("message_api_base_url", rootCmd.PersistentFlags().Lookup("message-api-base-url"))
	viper.BindPFlag("secret_code", rootCmd.PersistentFlags().Lookup("secret-code"))
	viper.BindPFlag("cart_file_path", rootCmd.PersistentFlags().Lookup("cart-file-path"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
	viper.BindPFlag("listen_addr", rootCmd.PersistentFlags().Lookup("listen-addr"))
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
	viper.BindPFlag("kafka_enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
	viper.BindPFlag("kafka_topic", rootCmd.PersistentFlags().Lookup("kafka-topic"))
}

func loadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
