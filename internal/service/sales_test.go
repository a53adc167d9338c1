package service

import (
	"context"
	"errors"
	"testing"
	"time"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/platform/messaging"
	"github.com/abgdnv/inventory/internal/platform/messaging/events"
	"github.com/abgdnv/inventory/internal/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sales_Record(t *testing.T) {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name         string
		storeError   error
		publishError error
		expected     *SaleDto
		expectError  error
		expectEvents int
	}{
		{
			name:         "Success - recorded and published",
			expected:     &SaleDto{ID: 1, ProductName: "apple", Quantity: 2, Date: date},
			expectEvents: 1,
		},
		{
			name:         "Success - publish failure does not fail the sale",
			publishError: errors.New("broker down"),
			expected:     &SaleDto{ID: 1, ProductName: "apple", Quantity: 2, Date: date},
			expectEvents: 1,
		},
		{
			name:        "Error - unknown product",
			storeError:  inverrors.ErrProductReference,
			expectError: inverrors.ErrProductReference,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			saleStore := &mockSaleStore{error: tc.storeError}
			publisher := &mockPublisher{error: tc.publishError}
			service := NewSales(saleStore, newMockProductStore(), publisher)
			// when
			recorded, err := service.Record(context.Background(), SaleCreateDto{ProductName: "apple", Quantity: ptr(2.0), Date: &date})
			// then
			assert.Equal(t, db.CreateSaleParams{ProductName: "apple", Quantity: 2, Date: &date}, saleStore.created)
			require.Len(t, publisher.events, tc.expectEvents)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, recorded)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, recorded)

			event, ok := publisher.events[0].(events.SaleRecordedEvent)
			require.True(t, ok)
			assert.Equal(t, messaging.SalesRecordedSubject, event.Subject())
			assert.Equal(t, int64(1), event.SaleID)
			assert.Equal(t, "apple", event.ProductName)
		})
	}
}

func Test_Sales_Aggregate(t *testing.T) {
	apple := db.Product{Name: "apple", Price: 2.5, UnitMeasureID: 1}
	milk := db.Product{Name: "milk", Price: 0.1, UnitMeasureID: 2}
	sales := []db.Sale{
		{ID: 1, ProductName: "apple", Quantity: 2},
		{ID: 2, ProductName: "milk", Quantity: 3},
		{ID: 3, ProductName: "apple", Quantity: 4},
		{ID: 4, ProductName: "milk", Quantity: 0.1},
		{ID: 5, ProductName: "milk", Quantity: 0.2},
	}

	testCases := []struct {
		name        string
		products    []db.Product
		sales       []db.Sale
		filter      *string
		expected    map[string]SaleSummaryDto
		expectError error
	}{
		{
			name:     "Success - all products",
			products: []db.Product{apple, milk},
			sales:    sales,
			expected: map[string]SaleSummaryDto{
				"apple": {Quantity: 6, Amount: 15},
				"milk":  {Quantity: 3.3, Amount: 0.33},
			},
		},
		{
			name:     "Success - filtered by product",
			products: []db.Product{apple, milk},
			sales:    sales,
			filter:   ptr("apple"),
			expected: map[string]SaleSummaryDto{"apple": {Quantity: 6, Amount: 15}},
		},
		{
			name:        "Error - no sales at all",
			products:    []db.Product{apple},
			expectError: inverrors.ErrSalesNotFound,
		},
		{
			name:        "Error - no sales for product",
			products:    []db.Product{apple, milk},
			sales:       sales,
			filter:      ptr("bread"),
			expectError: inverrors.ErrSalesNotFound,
		},
		{
			name:        "Error - sold product is missing",
			products:    []db.Product{apple},
			sales:       sales,
			expectError: inverrors.ErrReferentialAnomaly,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			saleStore := &mockSaleStore{sales: tc.sales}
			productStore := newMockProductStore(tc.products...)
			service := NewSales(saleStore, productStore, messaging.NoopPublisher{})
			// when
			summary, err := service.Aggregate(context.Background(), tc.filter)
			// then
			assert.Equal(t, tc.filter, saleStore.filter)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, summary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, summary)
		})
	}
}

func Test_Sales_Aggregate_LooksUpEachProductOnce(t *testing.T) {
	// given
	var sales []db.Sale
	for i := range 50 {
		name := "apple"
		if i%2 == 0 {
			name = "milk"
		}
		sales = append(sales, db.Sale{ID: int64(i + 1), ProductName: name, Quantity: 1})
	}
	productStore := newMockProductStore(
		db.Product{Name: "apple", Price: 1},
		db.Product{Name: "milk", Price: 2},
	)
	service := NewSales(&mockSaleStore{sales: sales}, productStore, messaging.NoopPublisher{})

	// when
	summary, err := service.Aggregate(context.Background(), nil)

	// then
	require.NoError(t, err)
	assert.Equal(t, map[string]SaleSummaryDto{
		"apple": {Quantity: 25, Amount: 25},
		"milk":  {Quantity: 25, Amount: 50},
	}, summary)
	assert.Equal(t, 2, productStore.totalLookups())
	assert.Equal(t, map[string]int{"apple": 1, "milk": 1}, productStore.lookups)
}

func Test_Sales_Aggregate_StoreError(t *testing.T) {
	// given
	ErrStoreError := errors.New("store error")
	service := NewSales(&mockSaleStore{error: ErrStoreError}, newMockProductStore(), messaging.NoopPublisher{})
	// when
	summary, err := service.Aggregate(context.Background(), nil)
	// then
	assert.ErrorIs(t, err, ErrStoreError)
	assert.Nil(t, summary)
}

func Test_Sales_Aggregate_AmountOutOfRange(t *testing.T) {
	// given
	sales := &mockSaleStore{sales: []db.Sale{{ID: 1, ProductName: "gold", Quantity: 10}}}
	products := newMockProductStore(db.Product{Name: "gold", Price: 1e308, UnitMeasureID: 1})
	service := NewSales(sales, products, messaging.NoopPublisher{})

	// when
	summary, err := service.Aggregate(context.Background(), nil)

	// then
	require.ErrorIs(t, err, inverrors.ErrAmountOutOfRange)
	assert.Contains(t, err.Error(), "gold")
	assert.Nil(t, summary)
}
