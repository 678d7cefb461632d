package projection

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Write renders the report in the given format: "table", "json" or "yaml".
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case "", "table":
		return writeTable(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func writeTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 1, 1, 2, ' ', 0)
	fmt.Fprintln(tw, "country\tpriority\tROAS\trows\tcost\tconversion_value\tpooled_ROAS")
	for _, g := range r.Groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			g.Country,
			g.Priority,
			g.ROAS,
			g.Rows,
			g.TotalCost.String(),
			g.TotalConversionValue.String(),
			g.PooledROAS)
	}
	return tw.Flush()
}
