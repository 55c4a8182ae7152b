package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/chenmo1212/foodorder/internal/export"
	"github.com/chenmo1212/foodorder/internal/repositories/postgres"
)

var (
	exportOutput string
	exportS3Key  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order history to Parquet",
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

		exporter := export.NewExporter(postgres.NewOrderRepository(pool))

		if exportS3Key != "" {
			if cfg.S3Bucket == "" {
				return fmt.Errorf("s3_bucket is required for S3 export")
			}
			count, err := exporter.ExportS3(ctx, cfg.S3Bucket, cfg.S3Region, exportS3Key)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d orders to s3://%s/%s\n", count, cfg.S3Bucket, exportS3Key)
			return nil
		}

		count, err := exporter.ExportFile(ctx, exportOutput)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d orders to %s\n", count, exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "orders.parquet", "Output file path")
	exportCmd.Flags().StringVar(&exportS3Key, "s3-key", "", "Upload to S3 under this object key instead of writing locally")
	rootCmd.AddCommand(exportCmd)
}
