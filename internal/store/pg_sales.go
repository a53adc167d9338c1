package store

import (
	"context"
	"fmt"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store/db"
)

// CreateSale records a new sale. The date defaults to the insertion time when params.Date is nil.
func (p *PgStore) CreateSale(ctx context.Context, params db.CreateSaleParams) (*db.Sale, error) {
	var created db.Sale
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		sale, err := qtx.CreateSale(ctx, params)
		if err != nil {
			if pgErrorCode(err) == foreignKeyViolation {
				return inverrors.ErrProductReference
			}
			return fmt.Errorf("failed to create sale: %w", err)
		}
		created = sale
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &created, nil
}

// FindSales retrieves the sales of a single product, or all sales if productName is nil.
// No need for a transaction here as it is a single query.
func (p *PgStore) FindSales(ctx context.Context, productName *string) ([]db.Sale, error) {
	var (
		sales []db.Sale
		err   error
	)
	if productName != nil {
		sales, err = p.q.FindSalesByProductName(ctx, *productName)
	} else {
		sales, err = p.q.FindAllSales(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find sales: %w", err)
	}
	return sales, nil
}
