package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// writeTable renders v as a two-column FIELD/VALUE table with flattened keys
// ("Product.Name", "Totals[0].Amount"). It round-trips through JSON so the
// table reflects the same field names as the JSON output.
func writeTable(out io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to flatten value for table output: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to flatten value for table output: %w", err)
	}

	rows := map[string]string{}
	flatten("", decoded, rows)

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, rows[k])
	}
	return tw.Flush()
}

func flatten(prefix string, v any, rows map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, rows)
		}
	case []any:
		for i, child := range val {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), child, rows)
		}
	default:
		if prefix == "" {
			prefix = "value"
		}
		rows[prefix] = fmt.Sprintf("%v", v)
	}
}
