package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/platform/messaging"
	"github.com/abgdnv/inventory/internal/platform/messaging/events"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/internal/store/db"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

// Sales implements SaleService. Prices are read from the product store at aggregation time.
type Sales struct {
	sales        store.SaleStore
	products     store.ProductStore
	publisher    messaging.Publisher
	salesCounter metric.Int64Counter
}

func NewSales(sales store.SaleStore, products store.ProductStore, publisher messaging.Publisher) *Sales {
	meter := otel.Meter("inventory-service")
	salesCounter, err := meter.Int64Counter("sales_recorded", metric.WithDescription("Total number of recorded sales"))
	if err != nil {
		panic(fmt.Sprintf("failed to create sales_recorded counter: %v", err))
	}
	return &Sales{
		sales:        sales,
		products:     products,
		publisher:    publisher,
		salesCounter: salesCounter,
	}
}

// Record stores the sale, then publishes a SaleRecordedEvent. A failed publish is logged and does not fail the call.
func (s *Sales) Record(ctx context.Context, sale SaleCreateDto) (*SaleDto, error) {
	created, err := s.sales.CreateSale(ctx, db.CreateSaleParams{
		ProductName: sale.ProductName,
		Quantity:    *sale.Quantity,
		Date:        sale.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record sale of %q: %w", sale.ProductName, err)
	}

	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	event := events.SaleRecordedEvent{
		SaleID:      created.ID,
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Date:        created.Date,
		Carrier:     carrier,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish SaleRecordedEvent", "sale_id", created.ID, "error", err)
	}
	s.salesCounter.Add(ctx, 1)

	return &SaleDto{
		ID:          created.ID,
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Date:        created.Date,
	}, nil
}

// Aggregate groups sales by product and prices each group with the product's current price.
// Each distinct product is looked up once regardless of how many sales it has.
func (s *Sales) Aggregate(ctx context.Context, productName *string) (map[string]SaleSummaryDto, error) {
	sales, err := s.sales.FindSales(ctx, productName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	if len(sales) == 0 {
		return nil, inverrors.ErrSalesNotFound
	}

	quantities := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		quantities[sale.ProductName] = quantities[sale.ProductName].Add(decimal.NewFromFloat(sale.Quantity))
	}

	result := make(map[string]SaleSummaryDto, len(quantities))
	for name, quantity := range quantities {
		price, err := s.priceOf(ctx, name)
		if err != nil {
			return nil, err
		}
		summary := SaleSummaryDto{
			Quantity: quantity.InexactFloat64(),
			Amount:   price.Mul(quantity).InexactFloat64(),
		}
		if !isFinite(summary.Quantity) || !isFinite(summary.Amount) {
			return nil, fmt.Errorf("product %q: %w", name, inverrors.ErrAmountOutOfRange)
		}
		result[name] = summary
	}
	return result, nil
}

func (s *Sales) priceOf(ctx context.Context, name string) (decimal.Decimal, error) {
	product, err := s.products.FindProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, inverrors.ErrProductNotFound) {
			slog.ErrorContext(ctx, "Sold product is missing", "product", name)
			return decimal.Decimal{}, fmt.Errorf("product %q: %w", name, inverrors.ErrReferentialAnomaly)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to fetch price of %q: %w", name, err)
	}
	return decimal.NewFromFloat(product.Price), nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
