// Package export dumps the order history to Parquet, locally or to S3, for
// offline analysis.
package export

import (
	"context"
	"fmt"
	"os"

	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/chenmo1212/foodorder/internal/repositories"
	"github.com/schollz/progressbar/v3"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

type orderRecord struct {
	OrderNumber   string  `parquet:"name=order_number, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerEmail string  `parquet:"name=customer_email, type=BYTE_ARRAY, convertedtype=UTF8"`
	DeliveryDate  string  `parquet:"name=delivery_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	DeliveryTime  string  `parquet:"name=delivery_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalAmount   float64 `parquet:"name=total_amount, type=DOUBLE"`
	TotalItems    int32   `parquet:"name=total_items, type=INT32"`
	Status        string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	PaymentStatus string  `parquet:"name=payment_status, type=BYTE_ARRAY, convertedtype=UTF8"`
	CreatedAt     int64   `parquet:"name=created_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

type Exporter struct {
	orders repositories.OrderRepository
}

func NewExporter(orders repositories.OrderRepository) *Exporter {
	return &Exporter{orders: orders}
}

// ExportFile writes every order to a local Parquet file.
func (e *Exporter) ExportFile(ctx context.Context, path string) (int, error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, fmt.Errorf("create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(orderRecord), 4)
	if err != nil {
		fw.Close()
		return 0, fmt.Errorf("create parquet writer: %w", err)
	}

	count := 0
	var bar *progressbar.ProgressBar

	const pageSize = 500
	for skip := 0; ; skip += pageSize {
		orders, total, err := e.orders.GetAll(ctx, repositories.OrderQuery{Limit: pageSize, Skip: skip})
		if err != nil {
			pw.WriteStop()
			fw.Close()
			return count, fmt.Errorf("fetch orders: %w", err)
		}
		if bar == nil {
			bar = progressbar.Default(int64(total), "exporting orders")
		}
		if len(orders) == 0 {
			break
		}
		for _, o := range orders {
			if err := pw.Write(toRecord(o)); err != nil {
				pw.WriteStop()
				fw.Close()
				return count, fmt.Errorf("write order %s: %w", o.OrderNumber, err)
			}
			count++
			bar.Add(1)
		}
		if len(orders) < pageSize {
			break
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return count, fmt.Errorf("finalize parquet file: %w", err)
	}
	return count, fw.Close()
}

// ExportS3 writes the Parquet file locally, then ships it to S3 through a
// cloud writer.
func (e *Exporter) ExportS3(ctx context.Context, bucket, region, key string) (int, error) {
	tmp, err := os.CreateTemp("", "orders-*.parquet")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	count, err := e.ExportFile(ctx, tmpPath)
	if err != nil {
		return count, err
	}

	factory, err := NewS3WriterFactory(region)
	if err != nil {
		return count, err
	}
	w, err := factory.NewWriter(bucket, key)
	if err != nil {
		return count, err
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return count, err
	}
	if _, err := w.Write(data); err != nil {
		return count, err
	}
	return count, w.Close()
}

func toRecord(o *models.Order) orderRecord {
	return orderRecord{
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		DeliveryDate:  o.DeliveryDate,
		DeliveryTime:  o.DeliveryTime,
		TotalAmount:   o.TotalAmount,
		TotalItems:    int32(o.TotalItems),
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt.UnixMilli(),
	}
}
