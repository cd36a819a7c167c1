package prep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"biomarkerprep/internal/table"
)

// csvTable parses CSV text into a table.
func csvTable(t *testing.T, lines ...string) table.Table {
	t.Helper()
	tbl, err := table.Read(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	return tbl
}

// texts returns the CSV rendering of a column.
func texts(t *testing.T, tbl table.Table, column string) []string {
	t.Helper()
	col, ok := tbl.Column(column)
	require.True(t, ok, "column %q not found", column)
	out := make([]string, len(col.Values))
	for i, v := range col.Values {
		out[i] = v.Text()
	}
	return out
}
