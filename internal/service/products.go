package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/internal/store/db"
)

// Products implements ProductService on top of a ProductStore.
type Products struct {
	store store.ProductStore
}

func NewProducts(s store.ProductStore) *Products {
	return &Products{store: s}
}

func (s *Products) FindByName(ctx context.Context, name string) (*ProductDto, error) {
	p, err := s.store.FindProductByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %q: %w", name, err)
	}
	return toProductDto(p), nil
}

func (s *Products) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.store.FindAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	dtos := make([]ProductDto, len(products))
	for i := range products {
		dtos[i] = *toProductDto(&products[i])
	}
	return dtos, nil
}

func (s *Products) Create(ctx context.Context, product ProductWriteDto) (*ProductDto, error) {
	p, err := s.store.CreateProduct(ctx, db.CreateProductParams{
		Name:          product.Name,
		Price:         *product.Price,
		UnitMeasureID: *product.UnitMeasureID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}
	return toProductDto(p), nil
}

func (s *Products) Update(ctx context.Context, product ProductWriteDto) (*ProductDto, error) {
	p, err := s.store.UpdateProduct(ctx, db.UpdateProductParams{
		Name:          product.Name,
		Price:         *product.Price,
		UnitMeasureID: *product.UnitMeasureID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product %q: %w", product.Name, err)
	}
	return toProductDto(p), nil
}

func (s *Products) Delete(ctx context.Context, name string) error {
	if err := s.store.DeleteProduct(ctx, name); err != nil {
		return fmt.Errorf("failed to delete product %q: %w", name, err)
	}
	return nil
}

func toProductDto(p *db.Product) *ProductDto {
	return &ProductDto{Name: p.Name, Price: p.Price, UnitMeasureID: p.UnitMeasureID}
}
