package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		text string
	}{
		{"35", KindNumber, "35"},
		{"0.89300", KindNumber, "0.89300"},
		{" 1.5 ", KindNumber, "1.5"},
		{"-2e3", KindNumber, "-2e3"},
		{"M", KindString, "M"},
		{"BPTB", KindString, "BPTB"},
		{"True", KindBool, "True"},
		{"false", KindBool, "False"},

		// Missing spellings
		{"", KindMissing, ""},
		{"NA", KindMissing, ""},
		{"NaN", KindMissing, ""},
		{"nan", KindMissing, ""},
		{"null", KindMissing, ""},
		{"<NA>", KindMissing, ""},
	}
	for _, tt := range tests {
		v := Parse(tt.in)
		assert.Equal(t, tt.kind, v.Kind(), "input %q", tt.in)
		assert.Equal(t, tt.text, v.Text(), "input %q", tt.in)
	}
}

func TestValue_Float(t *testing.T) {
	f, ok := Parse("2.5").Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	f, ok = Bool(true).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = String("x").Float()
	assert.False(t, ok)

	_, ok = Missing().Float()
	assert.False(t, ok)
}

func TestColumn_Numeric(t *testing.T) {
	assert.True(t, Column{Values: []Value{Number(1), Missing(), Bool(false)}}.Numeric())
	assert.True(t, Column{Values: []Value{Missing()}}.Numeric())
	assert.False(t, Column{Values: []Value{Number(1), String("x")}}.Numeric())
}
