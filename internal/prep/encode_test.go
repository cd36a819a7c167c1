package prep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomarkerprep/internal/table"
)

func TestEncode(t *testing.T) {
	raw := csvTable(t,
		"age,sex,diagnosis",
		"33,F,1",
		"81,M,2",
		"51,F,3",
	)

	out, err := Encode(raw, "sex", "sex")
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "sex_F", "sex_M", "diagnosis"}, out.Names())
	assert.Equal(t, []string{"1", "0", "1"}, texts(t, out, "sex_F"))
	assert.Equal(t, []string{"0", "1", "0"}, texts(t, out, "sex_M"))
	assert.Equal(t, raw.Len(), out.Len())
	assert.True(t, raw.Has("sex"), "input must be unchanged")
}

func TestEncode_ExactlyOneIndicatorPerRow(t *testing.T) {
	raw := csvTable(t, "origin", "BPTB", "LIV", "ESP", "UCL", "LIV", "BPTB")

	out, err := Encode(raw, "origin", "o")
	require.NoError(t, err)
	require.Equal(t, []string{"o_BPTB", "o_LIV", "o_ESP", "o_UCL"}, out.Names())

	src := texts(t, raw, "origin")
	for r := 0; r < out.Len(); r++ {
		ones := 0
		for j, name := range out.Names() {
			f, ok := out.Row(r)[j].Float()
			require.True(t, ok)
			if f == 1 {
				ones++
				assert.Equal(t, "o_"+src[r], name)
			}
		}
		assert.Equal(t, 1, ones, "row %d", r)
	}
}

func TestEncode_ExactMatchNotNumeric(t *testing.T) {
	raw := csvTable(t, "code", "1", "1.0", "1")

	out, err := Encode(raw, "code", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"code_1", "code_1.0"}, out.Names())
}

func TestEncode_MissingValues(t *testing.T) {
	raw := csvTable(t, "id,sex", "0,M", "1,", "2,F")

	out, err := Encode(raw, "sex", "sex")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "sex_M", "sex_F"}, out.Names())
	assert.Equal(t, []string{"1", "0", "0"}, texts(t, out, "sex_M"))
	assert.Equal(t, []string{"0", "0", "1"}, texts(t, out, "sex_F"))
}

func TestEncode_Errors(t *testing.T) {
	var schemaErr *table.SchemaError

	_, err := Encode(csvTable(t, "a", "x"), "sex", "sex")
	assert.True(t, errors.As(err, &schemaErr))

	_, err = Encode(csvTable(t, "sex,sex_M", "M,9"), "sex", "sex")
	assert.True(t, errors.As(err, &schemaErr), "indicator name collision")
}
