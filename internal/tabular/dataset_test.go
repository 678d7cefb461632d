package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCols []string
		wantRows int
		wantErr  error
	}{
		{
			name:     "header and rows",
			input:    "campaign_id,structure_value,status\n1,standard,ENABLED\n2,alpha_beta,PAUSED\n",
			wantCols: []string{"campaign_id", "structure_value", "status"},
			wantRows: 2,
		},
		{
			name:     "byte order mark is stripped from the header",
			input:    "\ufeffcampaign_id,status\n1,ENABLED\n",
			wantCols: []string{"campaign_id", "status"},
			wantRows: 1,
		},
		{
			name:    "ragged row",
			input:   "campaign_id,status\n1,ENABLED,extra\n",
			wantErr: ErrRowWidth,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyHeader,
		},
		{
			name:    "blank header column",
			input:   "campaign_id,,status\n",
			wantErr: ErrEmptyHeader,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := ReadCSV(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantCols, ds.Columns)
			require.Equal(t, tc.wantRows, ds.Len())
		})
	}
}

func TestDataset_Dedup(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(strings.Join([]string{
		"campaign_id,structure_value,status",
		"1,standard,ENABLED",
		"1,standard,ENABLED",
		"1,standard,PAUSED",
		"2,,ENABLED",
		"2,,ENABLED",
		"1,standard,ENABLED",
	}, "\n")))
	require.NoError(t, err)

	dropped := ds.Dedup()
	require.Equal(t, 3, dropped)
	require.Equal(t, 3, ds.Len())
	require.Equal(t, []interface{}{"1", "standard", "ENABLED"}, ds.Values(0))
	require.Equal(t, []interface{}{"1", "standard", "PAUSED"}, ds.Values(1))
	require.Equal(t, []interface{}{"2", nil, "ENABLED"}, ds.Values(2))
}

func TestRowKey_DistinguishesNullFromEmptyAndBoundaries(t *testing.T) {
	a, b := "a,b", "a"
	c := "b"
	require.NotEqual(t, rowKey([]*string{&a}), rowKey([]*string{&b, &c}))
	empty := ""
	require.NotEqual(t, rowKey([]*string{nil}), rowKey([]*string{&empty}))
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "campaigns.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("campaign_id,status\n7,ENABLED\n"), 0o644))
	ds, err := Load(csvPath, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	_, err = Load(filepath.Join(dir, "campaigns.parquet"), Options{})
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.csv"), Options{})
	require.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adgroups.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"campaign_id", "ad_group_id", "alias", "status"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"1", "10", "C - S - US - v1 - High", "ENABLED"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"1", "11", "C - S - DE - v1 - Low"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := Load(path, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"campaign_id", "ad_group_id", "alias", "status"}, ds.Columns)
	require.Equal(t, 2, ds.Len())
	require.Equal(t, []interface{}{"1", "11", "C - S - DE - v1 - Low", nil}, ds.Values(1))

	_, err = LoadXLSX(path, "NoSuchSheet")
	require.Error(t, err)
}
