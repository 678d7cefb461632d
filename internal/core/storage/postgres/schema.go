package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/adperf/internal/core/adperf"
	"github.com/aevon-lab/adperf/internal/core/storage"
)

// EnsureTables creates whichever of the loader's tables are missing from the
// current schema, all in one transaction, and returns the names it created.
// Existing tables are left untouched, so this is safe to call on every run.
//
// If another process creates a table between introspection and DDL, the
// transaction is rolled back and introspection runs once more.
func (a *Adapter) EnsureTables(ctx context.Context) ([]string, error) {
	created, err := a.createMissingTables(ctx)
	if errors.Is(err, storage.ErrDuplicateTable) {
		slog.Warn("[Postgres] Table created concurrently, re-checking schema", "error", err)
		created, err = a.createMissingTables(ctx)
	}
	return created, err
}

func (a *Adapter) createMissingTables(ctx context.Context) ([]string, error) {
	existing, err := a.listTables(ctx)
	if err != nil {
		return nil, err
	}

	var missing []adperf.Table
	for _, t := range adperf.AllTables() {
		if _, ok := existing[t.Name]; !ok {
			missing = append(missing, t)
		}
	}
	if len(missing) == 0 {
		slog.Info("[Postgres] All tables present")
		return nil, nil
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("ensure tables: begin tx: %w", err)
	}
	defer tx.Rollback()

	created := make([]string, 0, len(missing))
	for _, t := range missing {
		if _, err := tx.ExecContext(ctx, t.DDL); err != nil {
			return nil, fmt.Errorf("ensure tables: create %s: %w", t.Name, classify(err))
		}
		created = append(created, t.Name)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("ensure tables: commit: %w", err)
	}

	slog.Info("[Postgres] Created missing tables", "tables", created)
	return created, nil
}

func (a *Adapter) listTables(ctx context.Context) (map[string]struct{}, error) {
	rows, err := a.db.QueryContext(ctx, queryListTables)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return tables, nil
}
