package store

import (
	"context"
	"errors"
	"fmt"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store/db"
	"github.com/jackc/pgx/v5"
)

// FindUnitMeasureByID retrieves a unit measure by its identifier.
func (p *PgStore) FindUnitMeasureByID(ctx context.Context, id int64) (*db.UnitMeasure, error) {
	um, err := p.q.FindUnitMeasureByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inverrors.ErrUnitMeasureNotFound
		}
		return nil, fmt.Errorf("failed to find unit measure by ID: %w", err)
	}
	return &um, nil
}

// FindAllUnitMeasures retrieves all unit measures.
func (p *PgStore) FindAllUnitMeasures(ctx context.Context) ([]db.UnitMeasure, error) {
	ums, err := p.q.FindAllUnitMeasures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all unit measures: %w", err)
	}
	return ums, nil
}

// CreateUnitMeasure adds a new unit measure.
func (p *PgStore) CreateUnitMeasure(ctx context.Context, name string) (*db.UnitMeasure, error) {
	var created db.UnitMeasure
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		um, err := qtx.CreateUnitMeasure(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create unit measure: %w", err)
		}
		created = um
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &created, nil
}

// UpdateUnitMeasure locks the row, then overwrites its name.
func (p *PgStore) UpdateUnitMeasure(ctx context.Context, params db.UpdateUnitMeasureParams) (*db.UnitMeasure, error) {
	var updated db.UnitMeasure
	txErr := p.withTransaction(ctx, func(qtx *db.Queries) error {
		if _, err := qtx.FindUnitMeasureByIDForUpdate(ctx, params.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return inverrors.ErrUnitMeasureNotFound
			}
			return fmt.Errorf("failed to lock unit measure: %w", err)
		}
		um, err := qtx.UpdateUnitMeasure(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to update unit measure: %w", err)
		}
		updated = um
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &updated, nil
}

// DeleteUnitMeasure locks the row, then removes it.
func (p *PgStore) DeleteUnitMeasure(ctx context.Context, id int64) error {
	return p.withTransaction(ctx, func(qtx *db.Queries) error {
		if _, err := qtx.FindUnitMeasureByIDForUpdate(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return inverrors.ErrUnitMeasureNotFound
			}
			return fmt.Errorf("failed to lock unit measure: %w", err)
		}
		count, err := qtx.DeleteUnitMeasure(ctx, id)
		if err != nil {
			if pgErrorCode(err) == foreignKeyViolation {
				return inverrors.ErrEntityInUse
			}
			return fmt.Errorf("failed to delete unit measure: %w", err)
		}
		if count == 0 {
			return inverrors.ErrUnitMeasureNotFound
		}
		return nil
	})
}
