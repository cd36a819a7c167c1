package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"

	"biomarkerprep/internal/table"
)

// ColumnSummary describes one column of a table.
type ColumnSummary struct {
	Name    string
	Numeric bool
	Count   int // present values
	Nulls   int

	// Numeric columns.
	Mean, Std               float64
	Min, P25, P50, P75, Max float64

	// Other columns.
	Unique   int
	Top      string
	TopCount int
}

// Summary is a per-column description of a table.
type Summary struct {
	Rows    int
	Columns []ColumnSummary
}

// Describe summarizes every column of t.
func Describe(t table.Table) Summary {
	s := Summary{Rows: t.Len()}
	for _, name := range t.Names() {
		col, _ := t.Column(name)
		s.Columns = append(s.Columns, describeColumn(col))
	}
	return s
}

func describeColumn(c table.Column) ColumnSummary {
	cs := ColumnSummary{Name: c.Name, Numeric: c.Numeric()}
	if cs.Numeric {
		var xs []float64
		for _, v := range c.Values {
			if f, ok := v.Float(); ok {
				xs = append(xs, f)
			} else {
				cs.Nulls++
			}
		}
		cs.Count = len(xs)
		if len(xs) == 0 {
			nan := math.NaN()
			cs.Mean, cs.Std, cs.Min, cs.P25, cs.P50, cs.P75, cs.Max = nan, nan, nan, nan, nan, nan, nan
			return cs
		}
		sort.Float64s(xs)
		cs.Mean = Mean(xs)
		cs.Std = SampleStd(xs)
		cs.Min, cs.Max = xs[0], xs[len(xs)-1]
		cs.P25 = percentileSorted(xs, 25)
		cs.P50 = percentileSorted(xs, 50)
		cs.P75 = percentileSorted(xs, 75)
		return cs
	}

	counts := make(map[string]int)
	var order []string
	for _, v := range c.Values {
		if v.IsMissing() {
			cs.Nulls++
			continue
		}
		cs.Count++
		if counts[v.Text()] == 0 {
			order = append(order, v.Text())
		}
		counts[v.Text()]++
	}
	cs.Unique = len(order)
	// first-seen wins ties
	for _, k := range order {
		if counts[k] > cs.TopCount {
			cs.Top, cs.TopCount = k, counts[k]
		}
	}
	return cs
}

// Print writes s as an aligned text table.
func (s Summary) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "rows: %d  columns: %d\n", s.Rows, len(s.Columns)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcount\tnulls\tmean\tstd\tmin\t25%\t50%\t75%\tmax\tunique\ttop\tfreq")
	for _, c := range s.Columns {
		if c.Numeric {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\t\t\n",
				c.Name, c.Count, c.Nulls,
				num(c.Mean), num(c.Std), num(c.Min), num(c.P25), num(c.P50), num(c.P75), num(c.Max))
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t\t\t\t\t\t\t\t%d\t%s\t%d\n",
			c.Name, c.Count, c.Nulls, c.Unique, c.Top, c.TopCount)
	}
	return tw.Flush()
}

func num(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}
