package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// connSession runs every statement on one *sql.Conn. Each statement commits on
// its own, so rows written before a failure stay written.
type connSession struct {
	conn *sql.Conn
}

// maxBindParams is PostgreSQL's limit on parameters in one statement.
const maxBindParams = 65535

func (s *connSession) Upsert(ctx context.Context, table string, columns []string, rows [][]interface{}) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var inserted int64
	for _, chunk := range chunkRows(rows, len(columns)) {
		n, err := s.exec(ctx, table, columns, chunk)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}

	slog.Debug("[Postgres] Upserted rows",
		"table", table,
		"rows", len(rows),
		"inserted", inserted)
	return inserted, nil
}

func (s *connSession) exec(ctx context.Context, table string, columns []string, rows [][]interface{}) (int64, error) {
	query, args, err := buildUpsert(table, columns, rows)
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert for %s: %w", table, err)
	}

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert into %s: %w", table, classify(err))
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows for %s: %w", table, err)
	}
	return inserted, nil
}

// chunkRows splits rows so no statement binds more than maxBindParams values.
func chunkRows(rows [][]interface{}, columns int) [][][]interface{} {
	size := len(rows)
	if columns > 0 {
		size = maxBindParams / columns
	}
	if size < 1 {
		size = 1
	}

	chunks := make([][][]interface{}, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}

func (s *connSession) Close() error {
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("failed to release connection: %w", err)
	}
	return nil
}
