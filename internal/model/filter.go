package model

import (
	"fmt"
	"sort"
	"strings"
)

// AllColumns selects every column for Filter.
const AllColumns = "All"

// columnIndex resolves a canonical column name to its position in Row().
func columnIndex(column string) (int, error) {
	for i, name := range Columns() {
		if strings.EqualFold(name, column) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q (known: %s)", column, strings.Join(Columns(), ", "))
}

// Filter returns the records whose fields contain query, case-insensitively.
// column narrows the match to one canonical column name; AllColumns (or the
// empty string) matches against every field. An empty query returns the
// input unchanged. The input slice is never modified.
func Filter(records []ComponentRecord, query, column string) ([]ComponentRecord, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records, nil
	}

	idx := -1
	if column != "" && !strings.EqualFold(column, AllColumns) {
		i, err := columnIndex(column)
		if err != nil {
			return nil, err
		}
		idx = i
	}

	var matched []ComponentRecord
	for _, r := range records {
		row := r.Row()
		if idx >= 0 {
			if strings.Contains(strings.ToLower(row[idx]), query) {
				matched = append(matched, r)
			}
			continue
		}
		for _, v := range row {
			if strings.Contains(strings.ToLower(v), query) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched, nil
}

// SortBy returns a copy of records stably sorted on one canonical column,
// comparing values case-insensitively. desc reverses the order.
func SortBy(records []ComponentRecord, column string, desc bool) ([]ComponentRecord, error) {
	idx, err := columnIndex(column)
	if err != nil {
		return nil, err
	}

	sorted := make([]ComponentRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Row()[idx])
		b := strings.ToLower(sorted[j].Row()[idx])
		if desc {
			return a > b
		}
		return a < b
	})
	return sorted, nil
}
