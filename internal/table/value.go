package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "missing"
	}
}

// Value is a single table cell. The zero Value is missing.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Missing returns the missing value.
func Missing() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Int returns a numeric value holding n.
func Int(n int) Value {
	return Value{kind: KindNumber, num: float64(n), text: strconv.Itoa(n)}
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, num: 1, text: "True"}
	}
	return Value{kind: KindBool, num: 0, text: "False"}
}

// missingTokens are the field spellings read as missing.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"<NA>": {},
}

// Parse infers a Value from a raw CSV field. Numbers keep their source text
// so they are written back unchanged.
func Parse(field string) Value {
	s := strings.TrimSpace(field)
	if _, ok := missingTokens[s]; ok {
		return Missing()
	}
	switch s {
	case "True", "true", "TRUE":
		return Bool(true)
	case "False", "false", "FALSE":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) {
			return Missing()
		}
		return Value{kind: KindNumber, num: f, text: s}
	}
	return String(field)
}

// Kind reports the value's dynamic type.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the missing value.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns v as a float64. Booleans convert to 1 and 0; strings and
// missing values report false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber, KindBool:
		return v.num, true
	default:
		return 0, false
	}
}

// Text is the CSV rendering of v. Missing values render as the empty string.
func (v Value) Text() string { return v.text }

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindMissing {
		return "<missing>"
	}
	return v.text
}

// Equal reports whether two values have the same kind and text.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.text == o.text
}
