// Package service provides the business logic for unit measures, products and sales.
package service

import (
	"context"
	"time"
)

// UnitMeasureService defines the methods for managing unit measures.
type UnitMeasureService interface {
	// FindByID retrieves a single unit measure by its identifier.
	// Returns ErrUnitMeasureNotFound if no unit measure exists with the given ID.
	FindByID(ctx context.Context, id int64) (*UnitMeasureDto, error)

	// FindAll returns all unit measures.
	// Returns an empty slice if none exist.
	FindAll(ctx context.Context) ([]UnitMeasureDto, error)

	// Create adds a new unit measure.
	Create(ctx context.Context, unitMeasure UnitMeasureCreateDto) (*UnitMeasureDto, error)

	// Update renames an existing unit measure.
	// Returns ErrUnitMeasureNotFound if no unit measure exists with the given ID.
	Update(ctx context.Context, unitMeasure UnitMeasureUpdateDto) (*UnitMeasureDto, error)

	// Delete removes a unit measure by its ID.
	// Returns ErrUnitMeasureNotFound if absent and ErrEntityInUse if products reference it.
	Delete(ctx context.Context, id int64) error
}

// ProductService defines the methods for managing products.
type ProductService interface {
	// FindByName retrieves a product by its name.
	// Returns ErrProductNotFound if no product exists with the given name.
	FindByName(ctx context.Context, name string) (*ProductDto, error)

	// FindAll returns all products.
	// Returns an empty slice if none exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product.
	// Returns ErrUnitMeasureReference if the unit measure does not exist.
	Create(ctx context.Context, product ProductWriteDto) (*ProductDto, error)

	// Update replaces the price and unit measure of an existing product.
	// Returns ErrProductNotFound or ErrUnitMeasureReference.
	Update(ctx context.Context, product ProductWriteDto) (*ProductDto, error)

	// Delete removes a product by its name.
	// Returns ErrProductNotFound if absent and ErrEntityInUse if sales reference it.
	Delete(ctx context.Context, name string) error
}

// SaleService defines the methods for recording and aggregating sales.
type SaleService interface {
	// Record stores a new sale.
	// Returns ErrProductReference if the product does not exist.
	Record(ctx context.Context, sale SaleCreateDto) (*SaleDto, error)

	// Aggregate sums quantity and amount per product over all sales, or over one product's sales.
	// Returns ErrSalesNotFound if no sale matches and ErrReferentialAnomaly if a sold product is missing.
	Aggregate(ctx context.Context, productName *string) (map[string]SaleSummaryDto, error)
}

type UnitMeasureDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UnitMeasureCreateDto struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UnitMeasureUpdateDto struct {
	ID   *int64 `json:"id"   validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=100"`
}

type ProductDto struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	UnitMeasureID int64   `json:"unitMeasureId"`
}

// ProductWriteDto is the payload of both product creation and product update.
// Numeric fields are pointers so that an absent value is distinguishable from zero.
type ProductWriteDto struct {
	Name          string   `json:"name"          validate:"required,max=100"`
	Price         *float64 `json:"price"         validate:"required,gte=0,lte=1e12"`
	UnitMeasureID *int64   `json:"unitMeasureId" validate:"required,gt=0"`
}

type SaleCreateDto struct {
	ProductName string     `json:"productName" validate:"required,max=100"`
	Quantity    *float64   `json:"quantity"    validate:"required,gt=0,lte=1e9"`
	Date        *time.Time `json:"date,omitempty"`
}

type SaleDto struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"productName"`
	Quantity    float64   `json:"quantity"`
	Date        time.Time `json:"date"`
}

// SaleSummaryDto is the aggregated total of one product's sales.
type SaleSummaryDto struct {
	Quantity float64 `json:"quantity"`
	Amount   float64 `json:"amount"`
}
