package adperf

// Table describes one persisted entity: its name, column order and composite key.
// Every column is part of the primary key; the store has no surrogate keys.
type Table struct {
	Name    string
	Columns []string
	DDL     string
}

const (
	TableCampaigns   = "campaigns"
	TableAdGroups    = "adgroups"
	TableSearchItems = "search_items"
)

var (
	Campaigns = Table{
		Name:    TableCampaigns,
		Columns: []string{"campaign_id", "structure_value", "status"},
		DDL: `
		CREATE TABLE IF NOT EXISTS campaigns (
			campaign_id     BIGINT NOT NULL,
			structure_value TEXT   NOT NULL,
			status          TEXT   NOT NULL,
			PRIMARY KEY (campaign_id, structure_value, status)
		)`,
	}

	AdGroups = Table{
		Name:    TableAdGroups,
		Columns: []string{"campaign_id", "ad_group_id", "alias", "status"},
		DDL: `
		CREATE TABLE IF NOT EXISTS adgroups (
			campaign_id BIGINT NOT NULL,
			ad_group_id BIGINT NOT NULL,
			alias       TEXT   NOT NULL,
			status      TEXT   NOT NULL,
			PRIMARY KEY (campaign_id, ad_group_id, alias, status)
		)`,
	}

	SearchItems = Table{
		Name: TableSearchItems,
		Columns: []string{
			"campaign_id", "ad_group_id", "date", "clicks",
			"cost", "conversion_value", "conversions", "search_term",
		},
		DDL: `
		CREATE TABLE IF NOT EXISTS search_items (
			campaign_id      BIGINT           NOT NULL,
			ad_group_id      BIGINT           NOT NULL,
			date             DATE             NOT NULL,
			clicks           BIGINT           NOT NULL,
			cost             DOUBLE PRECISION NOT NULL,
			conversion_value INTEGER          NOT NULL,
			conversions      TEXT             NOT NULL,
			search_term      TEXT             NOT NULL,
			PRIMARY KEY (
				campaign_id, ad_group_id, date, clicks,
				cost, conversion_value, conversions, search_term
			)
		)`,
	}
)

// AllTables returns the tables in load order: campaigns, then ad groups, then search items.
func AllTables() []Table {
	return []Table{Campaigns, AdGroups, SearchItems}
}

// HasColumn reports whether name is one of the table's columns.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
