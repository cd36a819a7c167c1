package prep

import "biomarkerprep/internal/table"

// Prune returns t without the named columns. Every name must be a column of
// t; otherwise a *table.SchemaError lists the missing ones and nothing is
// dropped.
func Prune(t table.Table, names []string) (table.Table, error) {
	if len(names) == 0 {
		return t, nil
	}
	return t.Drop(names...)
}
