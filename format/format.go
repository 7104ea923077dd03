package format

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"

	"iplook/structs"
)

// JSON writes the successful results as an indented array, one object per
// address, with the provider's field order intact.
func JSON(w io.Writer, results []structs.Result) error {
	recs := make([]*structs.Record, 0, len(results))
	for _, res := range results {
		if res.OK() {
			recs = append(recs, res.Record)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

// CSV writes a header holding the sorted union of fields across all
// successful results, then one row per address. Fields a result lacks
// render as empty cells.
func CSV(w io.Writer, results []structs.Result) error {
	var recs []*structs.Record
	seen := make(map[string]bool)
	var header []string
	for _, res := range results {
		if !res.OK() {
			continue
		}
		recs = append(recs, res.Record)
		for _, key := range res.Record.Keys() {
			if !seen[key] {
				seen[key] = true
				header = append(header, key)
			}
		}
	}
	cw := csv.NewWriter(w)
	if len(recs) == 0 {
		cw.Flush()
		return cw.Error()
	}
	sort.Strings(header)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range recs {
		row := make([]string, len(header))
		for i, key := range header {
			row[i] = rec.String(key)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
