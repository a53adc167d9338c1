package store

import (
	"context"
	"errors"
	"fmt"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store/db"
	"github.com/jackc/pgx/v5"
)

// FindProductByName retrieves a product by its name.
func (p *PgStore) FindProductByName(ctx context.Context, name string) (*db.Product, error) {
	product, err := p.q.FindProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inverrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by name: %w", err)
	}
	return &product, nil
}

// FindAllProducts retrieves all products.
func (p *PgStore) FindAllProducts(ctx context.Context) ([]db.Product, error) {
	products, err := p.q.FindAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	return products, nil
}

// CreateProduct adds a new product.
func (p *PgStore) CreateProduct(ctx context.Context, params db.CreateProductParams) (*db.Product, error) {
	var created db.Product
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		product, err := qtx.CreateProduct(ctx, params)
		if err != nil {
			switch pgErrorCode(err) {
			case foreignKeyViolation:
				return inverrors.ErrUnitMeasureReference
			case uniqueViolation:
				return inverrors.ErrProductExists
			}
			return fmt.Errorf("failed to create product: %w", err)
		}
		created = product
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &created, nil
}

// UpdateProduct locks the row, then overwrites its price and unit measure.
func (p *PgStore) UpdateProduct(ctx context.Context, params db.UpdateProductParams) (*db.Product, error) {
	var updated db.Product
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		if _, err := qtx.FindProductByNameForUpdate(ctx, params.Name); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return inverrors.ErrProductNotFound
			}
			return fmt.Errorf("failed to lock product: %w", err)
		}
		product, err := qtx.UpdateProduct(ctx, params)
		if err != nil {
			if pgErrorCode(err) == foreignKeyViolation {
				return inverrors.ErrUnitMeasureReference
			}
			return fmt.Errorf("failed to update product: %w", err)
		}
		updated = product
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &updated, nil
}

// DeleteProduct locks the row, then removes it.
func (p *PgStore) DeleteProduct(ctx context.Context, name string) error {
	return p.withTransaction(ctx, func(qtx *db.Queries) error {
		if _, err := qtx.FindProductByNameForUpdate(ctx, name); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return inverrors.ErrProductNotFound
			}
			return fmt.Errorf("failed to lock product: %w", err)
		}
		count, err := qtx.DeleteProduct(ctx, name)
		if err != nil {
			if pgErrorCode(err) == foreignKeyViolation {
				return inverrors.ErrEntityInUse
			}
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if count == 0 {
			return inverrors.ErrProductNotFound
		}
		return nil
	})
}
