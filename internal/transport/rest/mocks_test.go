package rest

import (
	"context"

	"github.com/abgdnv/inventory/internal/service"
)

// mockUnitMeasureService is a mock implementation of the UnitMeasureService interface
type mockUnitMeasureService struct {
	unitMeasure  *service.UnitMeasureDto
	unitMeasures []service.UnitMeasureDto
	calledWith   any
	error        error
}

func (m *mockUnitMeasureService) FindByID(_ context.Context, id int64) (*service.UnitMeasureDto, error) {
	m.calledWith = id
	if m.error != nil {
		return nil, m.error
	}
	return m.unitMeasure, nil
}

func (m *mockUnitMeasureService) FindAll(_ context.Context) ([]service.UnitMeasureDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.unitMeasures, nil
}

func (m *mockUnitMeasureService) Create(_ context.Context, dto service.UnitMeasureCreateDto) (*service.UnitMeasureDto, error) {
	m.calledWith = dto
	if m.error != nil {
		return nil, m.error
	}
	return m.unitMeasure, nil
}

func (m *mockUnitMeasureService) Update(_ context.Context, dto service.UnitMeasureUpdateDto) (*service.UnitMeasureDto, error) {
	m.calledWith = *dto.ID
	if m.error != nil {
		return nil, m.error
	}
	return m.unitMeasure, nil
}

func (m *mockUnitMeasureService) Delete(_ context.Context, id int64) error {
	m.calledWith = id
	return m.error
}

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product    *service.ProductDto
	products   []service.ProductDto
	calledWith any
	error      error
}

func (m *mockProductService) FindByName(_ context.Context, name string) (*service.ProductDto, error) {
	m.calledWith = name
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) Create(_ context.Context, dto service.ProductWriteDto) (*service.ProductDto, error) {
	m.calledWith = dto.Name
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ context.Context, dto service.ProductWriteDto) (*service.ProductDto, error) {
	m.calledWith = dto.Name
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Delete(_ context.Context, name string) error {
	m.calledWith = name
	return m.error
}

// mockSaleService is a mock implementation of the SaleService interface
type mockSaleService struct {
	sale       *service.SaleDto
	summary    map[string]service.SaleSummaryDto
	calledWith *string
	error      error
}

func (m *mockSaleService) Record(_ context.Context, dto service.SaleCreateDto) (*service.SaleDto, error) {
	m.calledWith = &dto.ProductName
	if m.error != nil {
		return nil, m.error
	}
	return m.sale, nil
}

func (m *mockSaleService) Aggregate(_ context.Context, productName *string) (map[string]service.SaleSummaryDto, error) {
	m.calledWith = productName
	if m.error != nil {
		return nil, m.error
	}
	return m.summary, nil
}

type mockPinger struct {
	error error
}

func (m mockPinger) Ping(context.Context) error {
	return m.error
}
