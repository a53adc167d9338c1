// Package errors provides the error values shared by the inventory store, services and transports.
package errors

import (
	"errors"
	"fmt"
)

var ErrUnitMeasureNotFound = errors.New("unit measure not found")
var ErrProductNotFound = errors.New("product not found")
var ErrSalesNotFound = errors.New("no sales found")

// ErrConstraintViolation is the parent of every foreign-key failure raised on write.
var ErrConstraintViolation = errors.New("constraint violation")
var ErrUnitMeasureReference = fmt.Errorf("%w: referenced unit measure does not exist", ErrConstraintViolation)
var ErrProductReference = fmt.Errorf("%w: referenced product does not exist", ErrConstraintViolation)

var ErrProductExists = errors.New("product already exists")
var ErrEntityInUse = errors.New("entity is referenced by other records")

// ErrAmountOutOfRange is returned when an aggregated quantity or amount is not a finite float.
var ErrAmountOutOfRange = errors.New("aggregated amount is out of range")

// ErrReferentialAnomaly is returned when a sale points at a product that no longer exists.
var ErrReferentialAnomaly = errors.New("sale references a missing product")

var ErrTransactionBegin = errors.New("failed to begin transaction")
var ErrTransactionCommit = errors.New("failed to commit transaction")
var ErrTransactionRollback = errors.New("failed to rollback transaction")
