package service

import (
	"context"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/platform/messaging"
	"github.com/abgdnv/inventory/internal/store/db"
)

// mockUnitMeasureStore is a mock implementation of the UnitMeasureStore interface
type mockUnitMeasureStore struct {
	unitMeasures []db.UnitMeasure
	unitMeasure  db.UnitMeasure
	updated      db.UpdateUnitMeasureParams
	deletedID    int64
	error        error
}

func (m *mockUnitMeasureStore) FindUnitMeasureByID(_ context.Context, _ int64) (*db.UnitMeasure, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.unitMeasure, nil
}

func (m *mockUnitMeasureStore) FindAllUnitMeasures(_ context.Context) ([]db.UnitMeasure, error) {
	return m.unitMeasures, m.error
}

func (m *mockUnitMeasureStore) CreateUnitMeasure(_ context.Context, name string) (*db.UnitMeasure, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &db.UnitMeasure{ID: m.unitMeasure.ID, Name: name}, nil
}

func (m *mockUnitMeasureStore) UpdateUnitMeasure(_ context.Context, params db.UpdateUnitMeasureParams) (*db.UnitMeasure, error) {
	m.updated = params
	if m.error != nil {
		return nil, m.error
	}
	return &db.UnitMeasure{ID: params.ID, Name: params.Name}, nil
}

func (m *mockUnitMeasureStore) DeleteUnitMeasure(_ context.Context, id int64) error {
	m.deletedID = id
	return m.error
}

// mockProductStore is a mock implementation of the ProductStore interface.
// Products are looked up by name; lookups counts FindProductByName calls per name.
type mockProductStore struct {
	products map[string]db.Product
	lookups  map[string]int
	created  db.CreateProductParams
	updated  db.UpdateProductParams
	deleted  string
	error    error
}

func newMockProductStore(products ...db.Product) *mockProductStore {
	m := &mockProductStore{products: map[string]db.Product{}, lookups: map[string]int{}}
	for _, p := range products {
		m.products[p.Name] = p
	}
	return m
}

func (m *mockProductStore) FindProductByName(_ context.Context, name string) (*db.Product, error) {
	m.lookups[name]++
	if m.error != nil {
		return nil, m.error
	}
	p, ok := m.products[name]
	if !ok {
		return nil, inverrors.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockProductStore) FindAllProducts(_ context.Context) ([]db.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	list := make([]db.Product, 0, len(m.products))
	for _, p := range m.products {
		list = append(list, p)
	}
	return list, nil
}

func (m *mockProductStore) CreateProduct(_ context.Context, params db.CreateProductParams) (*db.Product, error) {
	m.created = params
	if m.error != nil {
		return nil, m.error
	}
	return &db.Product{Name: params.Name, Price: params.Price, UnitMeasureID: params.UnitMeasureID}, nil
}

func (m *mockProductStore) UpdateProduct(_ context.Context, params db.UpdateProductParams) (*db.Product, error) {
	m.updated = params
	if m.error != nil {
		return nil, m.error
	}
	return &db.Product{Name: params.Name, Price: params.Price, UnitMeasureID: params.UnitMeasureID}, nil
}

func (m *mockProductStore) DeleteProduct(_ context.Context, name string) error {
	m.deleted = name
	return m.error
}

func (m *mockProductStore) totalLookups() int {
	total := 0
	for _, n := range m.lookups {
		total += n
	}
	return total
}

// mockSaleStore is a mock implementation of the SaleStore interface
type mockSaleStore struct {
	sales   []db.Sale
	created db.CreateSaleParams
	filter  *string
	error   error
}

func (m *mockSaleStore) CreateSale(_ context.Context, params db.CreateSaleParams) (*db.Sale, error) {
	m.created = params
	if m.error != nil {
		return nil, m.error
	}
	sale := db.Sale{ID: 1, ProductName: params.ProductName, Quantity: params.Quantity}
	if params.Date != nil {
		sale.Date = *params.Date
	}
	return &sale, nil
}

func (m *mockSaleStore) FindSales(_ context.Context, productName *string) ([]db.Sale, error) {
	m.filter = productName
	if m.error != nil {
		return nil, m.error
	}
	if productName == nil {
		return m.sales, nil
	}
	var filtered []db.Sale
	for _, s := range m.sales {
		if s.ProductName == *productName {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// mockPublisher records published events
type mockPublisher struct {
	events []messaging.Event
	error  error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	m.events = append(m.events, event)
	return m.error
}
