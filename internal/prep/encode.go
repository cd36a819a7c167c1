package prep

import "biomarkerprep/internal/table"

// Encode one-hot encodes a categorical column. Each distinct value v, in
// first-seen order, becomes an integer column "<prefix>_<v>" holding 1 where
// the row's value is v and 0 elsewhere. The indicator columns replace the
// source column in place. Missing values are not a category, so such rows
// are 0 in every indicator.
func Encode(t table.Table, column, prefix string) (table.Table, error) {
	src, ok := t.Column(column)
	if !ok {
		return table.Table{}, table.ErrSchema("column %q not found", column)
	}
	if prefix == "" {
		prefix = column
	}

	slot := map[string]int{}
	var categories []string
	for _, v := range src.Values {
		if v.IsMissing() {
			continue
		}
		if _, seen := slot[v.Text()]; !seen {
			slot[v.Text()] = len(categories)
			categories = append(categories, v.Text())
		}
	}

	indicators := make([]table.Column, len(categories))
	for i, cat := range categories {
		name := prefix + "_" + cat
		if name != column && t.Has(name) {
			return table.Table{}, table.ErrSchema("indicator column %q already exists", name)
		}
		indicators[i] = table.Column{Name: name, Values: make([]table.Value, len(src.Values))}
	}
	for r, v := range src.Values {
		hit := -1
		if !v.IsMissing() {
			hit = slot[v.Text()]
		}
		for i := range indicators {
			if i == hit {
				indicators[i].Values[r] = table.Int(1)
			} else {
				indicators[i].Values[r] = table.Int(0)
			}
		}
	}
	return t.Splice(column, indicators...)
}
