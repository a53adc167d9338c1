package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/internal/store/db"
)

// UnitMeasures implements UnitMeasureService on top of a UnitMeasureStore.
type UnitMeasures struct {
	store store.UnitMeasureStore
}

func NewUnitMeasures(s store.UnitMeasureStore) *UnitMeasures {
	return &UnitMeasures{store: s}
}

func (s *UnitMeasures) FindByID(ctx context.Context, id int64) (*UnitMeasureDto, error) {
	um, err := s.store.FindUnitMeasureByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unit measure %d: %w", id, err)
	}
	return toUnitMeasureDto(um), nil
}

func (s *UnitMeasures) FindAll(ctx context.Context) ([]UnitMeasureDto, error) {
	ums, err := s.store.FindAllUnitMeasures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unit measures: %w", err)
	}
	dtos := make([]UnitMeasureDto, len(ums))
	for i := range ums {
		dtos[i] = *toUnitMeasureDto(&ums[i])
	}
	return dtos, nil
}

func (s *UnitMeasures) Create(ctx context.Context, unitMeasure UnitMeasureCreateDto) (*UnitMeasureDto, error) {
	um, err := s.store.CreateUnitMeasure(ctx, unitMeasure.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit measure: %w", err)
	}
	return toUnitMeasureDto(um), nil
}

func (s *UnitMeasures) Update(ctx context.Context, unitMeasure UnitMeasureUpdateDto) (*UnitMeasureDto, error) {
	um, err := s.store.UpdateUnitMeasure(ctx, db.UpdateUnitMeasureParams{ID: *unitMeasure.ID, Name: unitMeasure.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to update unit measure %d: %w", *unitMeasure.ID, err)
	}
	return toUnitMeasureDto(um), nil
}

func (s *UnitMeasures) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteUnitMeasure(ctx, id); err != nil {
		return fmt.Errorf("failed to delete unit measure %d: %w", id, err)
	}
	return nil
}

func toUnitMeasureDto(um *db.UnitMeasure) *UnitMeasureDto {
	return &UnitMeasureDto{ID: um.ID, Name: um.Name}
}
