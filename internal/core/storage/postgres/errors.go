package postgres

import (
	"errors"
	"fmt"

	"github.com/aevon-lab/adperf/internal/core/storage"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// classify maps PostgreSQL error codes onto storage sentinels, keeping the
// original *pq.Error reachable through the chain.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", storage.ErrUndefinedTable, err)
	case pgerrcode.DuplicateTable:
		return fmt.Errorf("%w: %w", storage.ErrDuplicateTable, err)
	case pgerrcode.UndefinedColumn:
		return fmt.Errorf("%w: %w", storage.ErrUndefinedColumn, err)
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", storage.ErrInvalidValue, err)
	}
	return err
}
