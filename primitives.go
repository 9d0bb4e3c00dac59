package hammer

import (
	"github.com/reoring/hammer/jsonschema"
)

// typeAdapter returns an adapter producing {"type": name}.
func typeAdapter(name string) AdapterFunc {
	return func(*Builder, Input) (Result, error) {
		return Emit(jsonschema.New().Set("type", name)), nil
	}
}

// adaptDateTime covers date, time and datetime alike.
func adaptDateTime(*Builder, Input) (Result, error) {
	return Emit(jsonschema.New().
		Set("type", "string").
		Set("format", "date-time")), nil
}

// adaptFloat approximates a number with a fractional part as a number that
// is not a multiple of 1. Integral values are rejected by this schema even
// when the source type accepts them.
func adaptFloat(_ *Builder, in Input) (Result, error) {
	keyword := "multipleOf"
	if in.Draft == Draft3 {
		keyword = "divisibleBy"
	}
	return Emit(jsonschema.New().
		Set("type", "number").
		Set("not", jsonschema.New().Set(keyword, 1))), nil
}
