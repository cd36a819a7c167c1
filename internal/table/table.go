// Package table holds the immutable in-memory table the preprocessing
// pipeline passes between stages, together with its CSV codec.
//
// A Table is a value: every method that changes shape returns a new Table
// and leaves the receiver untouched. Column storage that a derived table does
// not change is shared with its parent, which is safe because no method ever
// writes into an existing column slice.
package table

import (
	"slices"
	"strings"
)

// Column is a named sequence of values.
type Column struct {
	Name   string
	Values []Value
}

// Numeric reports whether every present value in the column is a number or
// a boolean. An all-missing column is numeric.
func (c Column) Numeric() bool {
	for _, v := range c.Values {
		if v.Kind() == KindString {
			return false
		}
	}
	return true
}

// Table is an ordered set of uniquely named, equal-length columns.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a table from cols. Column names must be non-empty and unique
// and every column must have the same length. Value slices are copied.
func New(cols ...Column) (Table, error) {
	owned := make([]Column, len(cols))
	for i, c := range cols {
		owned[i] = Column{Name: c.Name, Values: slices.Clone(c.Values)}
	}
	return build(owned)
}

// build validates cols and takes ownership of them without copying.
func build(cols []Column) (Table, error) {
	t := Table{cols: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c.Name == "" {
			return Table{}, ErrSchema("column %d has an empty name", i+1)
		}
		if _, dup := t.index[c.Name]; dup {
			return Table{}, ErrSchema("duplicate column %q", c.Name)
		}
		t.index[c.Name] = i
		if i == 0 {
			t.rows = len(c.Values)
		} else if len(c.Values) != t.rows {
			return Table{}, ErrSchema("column %q has %d rows, expected %d", c.Name, len(c.Values), t.rows)
		}
	}
	return t, nil
}

// Len returns the number of rows.
func (t Table) Len() int { return t.rows }

// Width returns the number of columns.
func (t Table) Width() int { return len(t.cols) }

// Names returns the column names in order.
func (t Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the table has a column called name.
func (t Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column.
func (t Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	c := t.cols[i]
	return Column{Name: c.Name, Values: slices.Clone(c.Values)}, true
}

// Row returns a copy of row i in column order.
func (t Table) Row(i int) []Value {
	row := make([]Value, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Values[i]
	}
	return row
}

// Missing returns the subset of names that are not columns of t, in the
// order given.
func (t Table) Missing(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !t.Has(n) && !slices.Contains(missing, n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Drop returns t without the named columns. Every name must exist.
func (t Table) Drop(names ...string) (Table, error) {
	if missing := t.Missing(names...); len(missing) > 0 {
		return Table{}, ErrSchema("columns not found: %s", strings.Join(missing, ", "))
	}
	kept := make([]Column, 0, len(t.cols))
	for _, c := range t.cols {
		if !slices.Contains(names, c.Name) {
			kept = append(kept, c)
		}
	}
	return build(kept)
}

// Splice replaces the named column with repl, which are inserted at its
// position. An empty repl removes the column.
func (t Table) Splice(name string, repl ...Column) (Table, error) {
	i, ok := t.index[name]
	if !ok {
		return Table{}, ErrSchema("column %q not found", name)
	}
	cols := make([]Column, 0, len(t.cols)-1+len(repl))
	cols = append(cols, t.cols[:i]...)
	for _, c := range repl {
		cols = append(cols, Column{Name: c.Name, Values: slices.Clone(c.Values)})
	}
	cols = append(cols, t.cols[i+1:]...)
	return build(cols)
}

// Filter returns the rows for which keep returns true, preserving order.
func (t Table) Filter(keep func(row int) bool) Table {
	var idx []int
	for r := 0; r < t.rows; r++ {
		if keep(r) {
			idx = append(idx, r)
		}
	}
	if len(idx) == t.rows {
		return t
	}
	cols := make([]Column, len(t.cols))
	for j, c := range t.cols {
		vals := make([]Value, len(idx))
		for k, r := range idx {
			vals[k] = c.Values[r]
		}
		cols[j] = Column{Name: c.Name, Values: vals}
	}
	return Table{cols: cols, index: t.index, rows: len(idx)}
}

// Equal reports whether t and o have the same columns in the same order
// holding equal values.
func (t Table) Equal(o Table) bool {
	if t.rows != o.rows || len(t.cols) != len(o.cols) {
		return false
	}
	for j, c := range t.cols {
		oc := o.cols[j]
		if c.Name != oc.Name {
			return false
		}
		for r := range c.Values {
			if !c.Values[r].Equal(oc.Values[r]) {
				return false
			}
		}
	}
	return true
}
