package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aevon-lab/adperf/internal/core/adperf"
	"github.com/aevon-lab/adperf/internal/core/storage"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewAdapterFromDB(db), mock
}

func TestAdapter_EnsureTables(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		setup       func(mock sqlmock.Sqlmock)
		wantCreated []string
		wantErr     error
	}{
		{
			name:     "all tables present issues no ddl",
			existing: []string{"campaigns", "adgroups", "search_items", "schema_migrations"},
		},
		{
			name:     "missing tables are created in one transaction",
			existing: []string{"campaigns"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(adperf.AdGroups.DDL)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta(adperf.SearchItems.DDL)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			wantCreated: []string{"adgroups", "search_items"},
		},
		{
			name:     "ddl failure rolls back",
			existing: nil,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(adperf.Campaigns.DDL)).
					WillReturnError(errors.New("permission denied"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("ensure tables: create campaigns"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock := newMockAdapter(t)

			rows := sqlmock.NewRows([]string{"table_name"})
			for _, name := range tc.existing {
				rows.AddRow(name)
			}
			mock.ExpectQuery(regexp.QuoteMeta(queryListTables)).WillReturnRows(rows)
			if tc.setup != nil {
				tc.setup(mock)
			}

			created, err := adapter.EnsureTables(context.Background())
			if tc.wantErr != nil {
				require.ErrorContains(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantCreated, created)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_EnsureTablesConcurrentCreator(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryListTables)).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("campaigns").AddRow("adgroups"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(adperf.SearchItems.DDL)).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgerrcode.DuplicateTable), Message: `relation "search_items" already exists`})
	mock.ExpectRollback()
	mock.ExpectQuery(regexp.QuoteMeta(queryListTables)).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("campaigns").AddRow("adgroups").AddRow("search_items"))

	created, err := adapter.EnsureTables(context.Background())
	require.NoError(t, err)
	require.Empty(t, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildUpsert(t *testing.T) {
	query, args, err := buildUpsert("campaigns",
		[]string{"campaign_id", "structure_value", "status"},
		[][]interface{}{
			{"1", "standard", "ENABLED"},
			{"2", nil, "PAUSED"},
		})
	require.NoError(t, err)
	require.Contains(t, query, `INSERT INTO "campaigns"`)
	require.Contains(t, query, `"structure_value"`)
	require.Contains(t, query, "ON CONFLICT DO NOTHING")
	require.Contains(t, query, "NULL")
	require.Equal(t, []interface{}{"1", "standard", "ENABLED", "2", "PAUSED"}, args)
}

func TestSession_Upsert(t *testing.T) {
	columns := []string{"campaign_id", "ad_group_id", "alias", "status"}
	rows := [][]interface{}{
		{"1", "10", "C - S - US - v1 - High", "ENABLED"},
		{"1", "11", "C - S - DE - v1 - Low", "ENABLED"},
	}
	query, _, err := buildUpsert("adgroups", columns, rows)
	require.NoError(t, err)

	tests := []struct {
		name         string
		mockResult   func(mock sqlmock.Sqlmock)
		wantInserted int64
		wantErr      error
	}{
		{
			name: "reports inserted rows",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("1", "10", "C - S - US - v1 - High", "ENABLED",
						"1", "11", "C - S - DE - v1 - Low", "ENABLED").
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
			wantInserted: 2,
		},
		{
			name: "conflicts insert nothing",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantInserted: 0,
		},
		{
			name: "undefined column is classified",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WillReturnError(&pq.Error{Code: pq.ErrorCode(pgerrcode.UndefinedColumn), Message: `column "bogus" does not exist`})
			},
			wantErr: storage.ErrUndefinedColumn,
		},
		{
			name: "bad integer text is classified",
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WillReturnError(&pq.Error{Code: pq.ErrorCode(pgerrcode.InvalidTextRepresentation)})
			},
			wantErr: storage.ErrInvalidValue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock := newMockAdapter(t)
			tc.mockResult(mock)

			sess, err := adapter.Session(context.Background())
			require.NoError(t, err)
			defer sess.Close()

			inserted, err := sess.Upsert(context.Background(), "adgroups", columns, rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var pqErr *pq.Error
				require.True(t, errors.As(err, &pqErr))
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantInserted, inserted)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSession_UpsertEmptyBatchIsNoop(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	sess, err := adapter.Session(context.Background())
	require.NoError(t, err)
	defer sess.Close()

	inserted, err := sess.Upsert(context.Background(), "campaigns", []string{"campaign_id"}, nil)
	require.NoError(t, err)
	require.Zero(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChunkRows(t *testing.T) {
	rows := make([][]interface{}, 8192)
	for i := range rows {
		rows[i] = []interface{}{"1", "10", "term", "0", "0", "1.5", "3", "1"}
	}

	chunks := chunkRows(rows, 8)
	require.Len(t, chunks, 2)
	require.Len(t, chunks[0], 8191)
	require.Len(t, chunks[1], 1)
	for _, c := range chunks {
		require.LessOrEqual(t, len(c)*8, maxBindParams)
	}

	require.Len(t, chunkRows(rows[:3], 0), 1)
}

func TestSession_UpsertSplitsOversizedBatch(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	columns := adperf.SearchItems.Columns
	require.Len(t, columns, 8)
	rows := make([][]interface{}, 8192)
	for i := range rows {
		rows[i] = []interface{}{"1", "10", "term", "2024-01-01", "0", "1.5", "3", "1"}
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "search_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 8191))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "search_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	sess, err := adapter.Session(context.Background())
	require.NoError(t, err)
	defer sess.Close()

	inserted, err := sess.Upsert(context.Background(), "search_items", columns, rows)
	require.NoError(t, err)
	require.Equal(t, int64(8191), inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_JoinedRows(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryJoinedRows)).
		WillReturnRows(sqlmock.NewRows([]string{"campaign_id", "ad_group_id", "alias", "conversion_value", "cost"}).
			AddRow(int64(1), int64(10), "C - S - US - v1 - High", int64(30), float64(10)).
			AddRow(int64(1), int64(10), "C - S - US - v1 - High", int64(20), float64(20.5))).
		RowsWillBeClosed()

	rows, err := adapter.JoinedRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, int64(10), rows[0].AdGroupID)
	require.Equal(t, "C - S - US - v1 - High", rows[0].Alias)
	require.True(t, decimal.NewFromInt(30).Equal(rows[0].ConversionValue))
	require.True(t, decimal.RequireFromString("20.5").Equal(rows[1].Cost))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_JoinedRowsMissingTable(t *testing.T) {
	adapter, mock := newMockAdapter(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryJoinedRows)).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgerrcode.UndefinedTable)})

	_, err := adapter.JoinedRows(context.Background())
	require.ErrorIs(t, err, storage.ErrUndefinedTable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryJoinedRows_Shape(t *testing.T) {
	require.Contains(t, queryJoinedRows, `FROM "adgroups"`)
	require.Contains(t, queryJoinedRows, `INNER JOIN "search_items"`)
	require.Contains(t, queryJoinedRows, `"search_items"."cost"`)
}
