package service

import (
	"context"
	"errors"
	"testing"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UnitMeasures_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockUnitMeasureStore
		expected    *UnitMeasureDto
		expectError error
	}{
		{
			name:      "Success - unit measure found",
			mockStore: &mockUnitMeasureStore{unitMeasure: db.UnitMeasure{ID: 1, Name: "kg"}},
			expected:  &UnitMeasureDto{ID: 1, Name: "kg"},
		},
		{
			name:        "Error - unit measure not found",
			mockStore:   &mockUnitMeasureStore{error: inverrors.ErrUnitMeasureNotFound},
			expectError: inverrors.ErrUnitMeasureNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewUnitMeasures(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), 1)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_UnitMeasures_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockUnitMeasureStore
		expected    []UnitMeasureDto
		expectError error
	}{
		{
			name:      "Success - unit measures found",
			mockStore: &mockUnitMeasureStore{unitMeasures: []db.UnitMeasure{{ID: 1, Name: "kg"}, {ID: 2, Name: "l"}}},
			expected:  []UnitMeasureDto{{ID: 1, Name: "kg"}, {ID: 2, Name: "l"}},
		},
		{
			name:      "Success - no unit measures",
			mockStore: &mockUnitMeasureStore{unitMeasures: []db.UnitMeasure{}},
			expected:  []UnitMeasureDto{},
		},
		{
			name:        "Error - store error",
			mockStore:   &mockUnitMeasureStore{error: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewUnitMeasures(tc.mockStore)
			// when
			list, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, list)
		})
	}
}

func Test_UnitMeasures_Create(t *testing.T) {
	// given
	service := NewUnitMeasures(&mockUnitMeasureStore{unitMeasure: db.UnitMeasure{ID: 5}})
	// when
	created, err := service.Create(context.Background(), UnitMeasureCreateDto{Name: "kg"})
	// then
	require.NoError(t, err)
	assert.Equal(t, &UnitMeasureDto{ID: 5, Name: "kg"}, created)
}

func Test_UnitMeasures_Update(t *testing.T) {
	id := int64(3)
	testCases := []struct {
		name        string
		mockStore   *mockUnitMeasureStore
		expected    *UnitMeasureDto
		expectError error
	}{
		{
			name:      "Success - renamed",
			mockStore: &mockUnitMeasureStore{},
			expected:  &UnitMeasureDto{ID: 3, Name: "litre"},
		},
		{
			name:        "Error - not found",
			mockStore:   &mockUnitMeasureStore{error: inverrors.ErrUnitMeasureNotFound},
			expectError: inverrors.ErrUnitMeasureNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewUnitMeasures(tc.mockStore)
			// when
			updated, err := service.Update(context.Background(), UnitMeasureUpdateDto{ID: &id, Name: "litre"})
			// then
			assert.Equal(t, db.UpdateUnitMeasureParams{ID: 3, Name: "litre"}, tc.mockStore.updated)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated)
		})
	}
}

func Test_UnitMeasures_Delete(t *testing.T) {
	testCases := []struct {
		name        string
		storeError  error
		expectError error
	}{
		{name: "Success - deleted"},
		{name: "Error - not found", storeError: inverrors.ErrUnitMeasureNotFound, expectError: inverrors.ErrUnitMeasureNotFound},
		{name: "Error - in use", storeError: inverrors.ErrEntityInUse, expectError: inverrors.ErrEntityInUse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockStore := &mockUnitMeasureStore{error: tc.storeError}
			service := NewUnitMeasures(mockStore)
			// when
			err := service.Delete(context.Background(), 9)
			// then
			assert.Equal(t, int64(9), mockStore.deletedID)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
