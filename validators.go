package hammer

import (
	"fmt"

	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

// validatorAs accepts both T and *T.
func validatorAs[T any](v schema.Validator) (T, error) {
	switch t := any(v).(type) {
	case T:
		return t, nil
	case *T:
		if t != nil {
			return *t, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unexpected validator %T, want %T", v, zero)
}

func convertRegex(_ *Builder, in Input) (Result, error) {
	rx, err := validatorAs[schema.Regex](in.Validator)
	if err != nil {
		return Result{}, err
	}
	return Emit(jsonschema.New().Set("pattern", rx.Pattern)), nil
}

func convertEmail(*Builder, Input) (Result, error) {
	return Emit(jsonschema.New().Set("format", "email")), nil
}

func convertURL(_ *Builder, in Input) (Result, error) {
	u, err := validatorAs[schema.URL](in.Validator)
	if err != nil {
		return Result{}, err
	}
	return Emit(jsonschema.New().Set("pattern", u.Pattern())), nil
}

// convertRange emits maximum only when an upper bound is configured.
func convertRange(_ *Builder, in Input) (Result, error) {
	r, err := validatorAs[schema.Range](in.Validator)
	if err != nil {
		return Result{}, err
	}
	s := jsonschema.New()
	if r.Min != nil {
		s.Set("minimum", r.Min)
	}
	if r.Max != nil {
		s.Set("maximum", r.Max)
	}
	return Emit(s), nil
}

func convertLength(_ *Builder, in Input) (Result, error) {
	l, err := validatorAs[schema.Length](in.Validator)
	if err != nil {
		return Result{}, err
	}
	return Emit(jsonschema.New().
		Set("minLength", l.Min).
		Set("maxLength", l.Max)), nil
}

func convertOneOf(_ *Builder, in Input) (Result, error) {
	o, err := validatorAs[schema.OneOf](in.Validator)
	if err != nil {
		return Result{}, err
	}
	choices := append([]any(nil), o.Choices...)
	return Emit(jsonschema.New().Set("enum", choices)), nil
}
