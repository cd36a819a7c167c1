package prep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomarkerprep/internal/table"
)

func TestBinarizeLabel(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"diagnosis groups", []string{"1", "2", "3", "1"}, []string{"0", "1", "1", "0"}},
		{"out of domain", []string{"0", "7", "-1", "1.0"}, []string{"1", "1", "1", "0"}},
		{"booleans", []string{"True", "False"}, []string{"0", "1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := csvTable(t, append([]string{"diagnosis"}, tc.in...)...)
			out, err := BinarizeLabel(raw, DefaultLabelColumn)
			require.NoError(t, err)
			assert.Equal(t, tc.want, texts(t, out, "diagnosis"))
			assert.Equal(t, tc.in, texts(t, raw, "diagnosis"), "input must be unchanged")
		})
	}
}

func TestBinarizeLabel_MissingIsNotOne(t *testing.T) {
	raw := csvTable(t, "id,diagnosis", "1,1", "2,", "3,2")

	out, err := BinarizeLabel(raw, "diagnosis")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "1"}, texts(t, out, "diagnosis"))
}

func TestBinarizeLabel_NotIdempotent(t *testing.T) {
	raw := csvTable(t, "age,diagnosis", "33,1", "81,2", "51,3")

	once, err := BinarizeLabel(raw, "diagnosis")
	require.NoError(t, err)
	twice, err := BinarizeLabel(once, "diagnosis")
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "1"}, texts(t, once, "diagnosis"))
	assert.Equal(t, []string{"1", "0", "0"}, texts(t, twice, "diagnosis"))
	assert.Equal(t, []string{"age", "diagnosis"}, twice.Names())
}

func TestBinarizeLabel_Errors(t *testing.T) {
	var schemaErr *table.SchemaError

	_, err := BinarizeLabel(csvTable(t, "a", "1"), "diagnosis")
	assert.True(t, errors.As(err, &schemaErr))

	_, err = BinarizeLabel(csvTable(t, "diagnosis", "1", "cancer"), "diagnosis")
	assert.True(t, errors.As(err, &schemaErr))
}
