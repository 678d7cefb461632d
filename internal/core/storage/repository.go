package storage

import (
	"context"
	"errors"

	"github.com/aevon-lab/adperf/internal/core/adperf"
)

// Classified database failures. Adapters wrap driver errors so that both the
// sentinel and the original error match errors.Is / errors.As.
var (
	ErrUndefinedTable  = errors.New("table does not exist")
	ErrUndefinedColumn = errors.New("column does not exist")
	ErrDuplicateTable  = errors.New("table already exists")
	ErrInvalidValue    = errors.New("value rejected by column type or constraint")
)

// Session is one acquired database connection. All writes of an ingest run go
// through a single session; Close releases the connection back to the pool.
type Session interface {
	// Upsert inserts rows into table with ON CONFLICT DO NOTHING and returns the
	// number of rows actually inserted. Conflicting rows are skipped silently.
	Upsert(ctx context.Context, table string, columns []string, rows [][]interface{}) (int64, error)
	Close() error
}

// SessionOpener hands out scoped sessions.
type SessionOpener interface {
	Session(ctx context.Context) (Session, error)
}

// ReportStore reads the ad group / search item join used by the ROAS report.
type ReportStore interface {
	JoinedRows(ctx context.Context) ([]adperf.JoinedRow, error)
}

// SchemaInitializer creates the tables the loader writes to.
type SchemaInitializer interface {
	EnsureTables(ctx context.Context) ([]string, error)
}
