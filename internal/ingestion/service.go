package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/adperf/internal/core/adperf"
	"github.com/aevon-lab/adperf/internal/core/storage"
	"github.com/aevon-lab/adperf/internal/tabular"
	"github.com/google/uuid"
)

const defaultBatchSize = 1

// Source pairs an input file with the table it loads into.
type Source struct {
	Table adperf.Table
	Path  string
}

// Options tunes a load run.
type Options struct {
	BatchSize     int    // rows per INSERT; 1 issues one statement per row
	ProgressEvery int    // log progress every N rows; 0 logs only per table
	Sheet         string // xlsx worksheet, empty for the first sheet
}

// TableResult summarizes the load of one source.
type TableResult struct {
	Table      string
	Path       string
	Read       int   // data rows in the file
	Duplicates int   // exact duplicates dropped before loading
	Processed  int   // rows sent to the database
	Inserted   int64 // rows the database accepted
	Skipped    int64 // rows dropped by ON CONFLICT DO NOTHING
}

// Service loads flat files into the store with conflict-do-nothing inserts.
type Service struct {
	sessions storage.SessionOpener
	opts     Options
}

func NewService(sessions storage.SessionOpener, opts Options) *Service {
	if sessions == nil {
		panic("ingestion: session opener must not be nil")
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.ProgressEvery < 0 {
		opts.ProgressEvery = 0
	}
	return &Service{sessions: sessions, opts: opts}
}

// Run reads and dedups every source before touching the database, so a missing
// or ragged file fails the run with nothing written. It then loads the sources
// in order on a single connection. The first database failure aborts the rest
// of that table and every later source; rows already written stay.
func (s *Service) Run(ctx context.Context, sources []Source) (results []TableResult, err error) {
	runID := uuid.NewString()
	logger := slog.With("run_id", runID)

	datasets := make([]*tabular.Dataset, 0, len(sources))
	results = make([]TableResult, 0, len(sources))
	for _, src := range sources {
		ds, res, err := s.readSource(logger, src)
		if err != nil {
			logger.Error("Ingest aborted before loading", "table", src.Table.Name, "error", err)
			return nil, err
		}
		datasets = append(datasets, ds)
		results = append(results, res)
	}

	sess, err := s.sessions.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	logger.Info("Ingest started", "sources", len(sources), "batch_size", s.opts.BatchSize)

	for i, src := range sources {
		if err := s.writeSource(ctx, logger, sess, src, datasets[i], &results[i]); err != nil {
			logger.Error("Ingest aborted", "table", src.Table.Name, "error", err)
			return results[:i+1], err
		}
	}

	logger.Info("Ingest finished", "tables", len(results))
	return results, nil
}

func (s *Service) readSource(logger *slog.Logger, src Source) (*tabular.Dataset, TableResult, error) {
	res := TableResult{Table: src.Table.Name, Path: src.Path}

	ds, err := tabular.Load(src.Path, tabular.Options{Sheet: s.opts.Sheet})
	if err != nil {
		return nil, res, fmt.Errorf("%s: %w", src.Table.Name, err)
	}
	res.Read = ds.Len()
	res.Duplicates = ds.Dedup()

	// Unknown columns are left for the database to reject.
	for _, col := range ds.Columns {
		if !src.Table.HasColumn(col) {
			logger.Warn("Column not in table schema", "table", src.Table.Name, "column", col)
		}
	}
	return ds, res, nil
}

func (s *Service) writeSource(ctx context.Context, logger *slog.Logger, sess storage.Session, src Source, ds *tabular.Dataset, res *TableResult) error {
	logger.Info("Loading table",
		"table", src.Table.Name,
		"path", src.Path,
		"rows", ds.Len(),
		"duplicates_dropped", res.Duplicates)

	nextProgress := s.opts.ProgressEvery
	for start := 0; start < ds.Len(); start += s.opts.BatchSize {
		end := start + s.opts.BatchSize
		if end > ds.Len() {
			end = ds.Len()
		}

		batch := make([][]interface{}, 0, end-start)
		for i := start; i < end; i++ {
			batch = append(batch, ds.Values(i))
		}

		inserted, err := sess.Upsert(ctx, src.Table.Name, ds.Columns, batch)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", src.Table.Name, rowRange(start, end), err)
		}

		res.Processed = end
		res.Inserted += inserted
		res.Skipped += int64(len(batch)) - inserted

		if nextProgress > 0 && res.Processed >= nextProgress {
			logger.Info("Progress",
				"table", src.Table.Name,
				"processed", res.Processed,
				"total", ds.Len(),
				"inserted", res.Inserted,
				"skipped", res.Skipped)
			for nextProgress <= res.Processed {
				nextProgress += s.opts.ProgressEvery
			}
		}
	}

	logger.Info("Table loaded",
		"table", src.Table.Name,
		"processed", res.Processed,
		"inserted", res.Inserted,
		"skipped", res.Skipped)
	return nil
}

// rowRange names data rows 1-based, matching spreadsheet row numbers minus the header.
func rowRange(start, end int) string {
	if end-start == 1 {
		return fmt.Sprintf("row %d", start+1)
	}
	return fmt.Sprintf("rows %d-%d", start+1, end)
}

// DefaultSources maps the three input paths onto their tables in load order.
func DefaultSources(campaignsPath, adGroupsPath, searchTermsPath string) []Source {
	return []Source{
		{Table: adperf.Campaigns, Path: campaignsPath},
		{Table: adperf.AdGroups, Path: adGroupsPath},
		{Table: adperf.SearchItems, Path: searchTermsPath},
	}
}
