package postgres

import (
	"github.com/aevon-lab/adperf/internal/core/adperf"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Register postgres dialect
)

var dialect = goqu.Dialect("postgres")

const (
	// queryListTables returns the tables visible in the connection's current schema.
	queryListTables = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
	`
)

var (
	adGroupsTable    = goqu.T(adperf.TableAdGroups)
	searchItemsTable = goqu.T(adperf.TableSearchItems)

	// queryJoinedRows pairs every ad group with its search items.
	// Inner join: ad groups without search items (and vice versa) are excluded.
	queryJoinedRows = mustSQL(dialect.
		From(adGroupsTable).
		InnerJoin(searchItemsTable, goqu.On(
			adGroupsTable.Col("campaign_id").Eq(searchItemsTable.Col("campaign_id")),
			adGroupsTable.Col("ad_group_id").Eq(searchItemsTable.Col("ad_group_id")),
		)).
		Select(
			adGroupsTable.Col("campaign_id").As("campaign_id"),
			adGroupsTable.Col("ad_group_id").As("ad_group_id"),
			adGroupsTable.Col("alias").As("alias"),
			searchItemsTable.Col("conversion_value").As("conversion_value"),
			searchItemsTable.Col("cost").As("cost"),
		).
		ToSQL())
)

func mustSQL(sql string, _ []interface{}, err error) string {
	if err != nil {
		panic(err)
	}
	return sql
}

// buildUpsert renders a parameterized multi-row insert that skips rows whose
// composite key already exists. NULL cells are rendered inline by goqu, so the
// returned args hold only non-nil values.
func buildUpsert(table string, columns []string, rows [][]interface{}) (string, []interface{}, error) {
	cols := make([]interface{}, len(columns))
	for i, c := range columns {
		cols[i] = c
	}
	return dialect.
		Insert(table).
		Cols(cols...).
		Vals(rows...).
		OnConflict(goqu.DoNothing()).
		Prepared(true).
		ToSQL()
}
