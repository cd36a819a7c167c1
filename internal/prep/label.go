package prep

import "biomarkerprep/internal/table"

// BinarizeLabel maps every value of column to 0 when it equals 1 and to 1
// otherwise. Values outside the expected {1, 2, 3} domain are not rejected,
// and a missing value is not 1 so it maps to 1. String values fail with
// *table.SchemaError.
func BinarizeLabel(t table.Table, column string) (table.Table, error) {
	src, ok := t.Column(column)
	if !ok {
		return table.Table{}, table.ErrSchema("column %q not found", column)
	}
	out := make([]table.Value, len(src.Values))
	for r, v := range src.Values {
		if v.IsMissing() {
			out[r] = table.Int(1)
			continue
		}
		f, ok := v.Float()
		if !ok {
			return table.Table{}, table.ErrSchema("column %q row %d holds non-numeric value %s", column, r+1, v)
		}
		if f == 1 {
			out[r] = table.Int(0)
		} else {
			out[r] = table.Int(1)
		}
	}
	return t.Splice(column, table.Column{Name: column, Values: out})
}
