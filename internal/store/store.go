// Package store provides the persistence operations for unit measures, products and sales.
package store

import (
	"context"

	"github.com/abgdnv/inventory/internal/store/db"
)

// UnitMeasureStore is an interface for unit measure storage operations.
type UnitMeasureStore interface {
	// FindUnitMeasureByID retrieves a single unit measure by its identifier.
	// Returns ErrUnitMeasureNotFound if no unit measure exists with the given ID.
	FindUnitMeasureByID(ctx context.Context, id int64) (*db.UnitMeasure, error)

	// FindAllUnitMeasures returns every unit measure. Order is not guaranteed.
	FindAllUnitMeasures(ctx context.Context) ([]db.UnitMeasure, error)

	// CreateUnitMeasure adds a new unit measure.
	CreateUnitMeasure(ctx context.Context, name string) (*db.UnitMeasure, error)

	// UpdateUnitMeasure renames an existing unit measure.
	// Returns ErrUnitMeasureNotFound if no unit measure exists with the given ID.
	UpdateUnitMeasure(ctx context.Context, params db.UpdateUnitMeasureParams) (*db.UnitMeasure, error)

	// DeleteUnitMeasure removes a unit measure.
	// Returns ErrUnitMeasureNotFound if absent and ErrEntityInUse if products still reference it.
	DeleteUnitMeasure(ctx context.Context, id int64) error
}

// ProductStore is an interface for product storage operations.
type ProductStore interface {
	// FindProductByName retrieves a product by its name.
	// Returns ErrProductNotFound if no product exists with the given name.
	FindProductByName(ctx context.Context, name string) (*db.Product, error)

	// FindAllProducts returns every product. Order is not guaranteed.
	FindAllProducts(ctx context.Context) ([]db.Product, error)

	// CreateProduct adds a new product.
	// Returns ErrUnitMeasureReference if the unit measure does not exist and ErrProductExists on a duplicate name.
	CreateProduct(ctx context.Context, params db.CreateProductParams) (*db.Product, error)

	// UpdateProduct replaces the price and unit measure of a product.
	// Returns ErrProductNotFound or ErrUnitMeasureReference.
	UpdateProduct(ctx context.Context, params db.UpdateProductParams) (*db.Product, error)

	// DeleteProduct removes a product.
	// Returns ErrProductNotFound if absent and ErrEntityInUse if sales still reference it.
	DeleteProduct(ctx context.Context, name string) error
}

// SaleStore is an interface for sale storage operations. Sales are append-only.
type SaleStore interface {
	// CreateSale records a sale. Returns ErrProductReference if the product does not exist.
	CreateSale(ctx context.Context, params db.CreateSaleParams) (*db.Sale, error)

	// FindSales returns the sales of one product, or all sales when productName is nil.
	FindSales(ctx context.Context, productName *string) ([]db.Sale, error)
}
