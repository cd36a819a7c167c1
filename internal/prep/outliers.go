package prep

import (
	"biomarkerprep/internal/stats"
	"biomarkerprep/internal/table"
)

// OutlierStep records one column's pass of the outlier filter.
type OutlierStep struct {
	Column     string
	Bounds     stats.Bounds
	Present    bool // false when the column had no values to bound
	RowsBefore int
	RowsAfter  int
}

// Removed is the number of rows the step dropped.
func (s OutlierStep) Removed() int { return s.RowsBefore - s.RowsAfter }

// FilterOutliers removes rows outside each column's IQR fence, one column at
// a time in the given order. See FilterOutliersReport.
func FilterOutliers(t table.Table, columns []string) (table.Table, error) {
	out, _, err := FilterOutliersReport(t, columns)
	return out, err
}

// FilterOutliersReport folds columns over t. Each step computes the quartile
// bounds of its column on the rows that survived the previous steps and keeps
// the rows whose value lies in [Q1-1.5*IQR, Q3+1.5*IQR]. Rows with a missing
// value in the column are dropped. A column that is absent or holds strings
// fails with *table.SchemaError.
func FilterOutliersReport(t table.Table, columns []string) (table.Table, []OutlierStep, error) {
	steps := make([]OutlierStep, 0, len(columns))
	acc := t
	for _, column := range columns {
		next, step, err := filterColumn(acc, column)
		if err != nil {
			return table.Table{}, steps, err
		}
		steps = append(steps, step)
		acc = next
	}
	return acc, steps, nil
}

func filterColumn(t table.Table, column string) (table.Table, OutlierStep, error) {
	step := OutlierStep{Column: column, RowsBefore: t.Len()}

	col, ok := t.Column(column)
	if !ok {
		return table.Table{}, step, table.ErrSchema("column %q not found", column)
	}
	if !col.Numeric() {
		return table.Table{}, step, table.ErrSchema("column %q is not numeric", column)
	}

	present := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if f, ok := v.Float(); ok {
			present = append(present, f)
		}
	}
	bounds, ok := stats.QuartileBounds(present)
	step.Bounds, step.Present = bounds, ok

	out := t.Filter(func(r int) bool {
		f, isNum := col.Values[r].Float()
		return ok && isNum && bounds.Contains(f)
	})
	step.RowsAfter = out.Len()
	return out, step, nil
}
