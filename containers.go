package hammer

import (
	"fmt"

	"github.com/reoring/hammer/jsonschema"
)

// adaptMapping converts a mapping into an object whose properties follow the
// children's declaration order. Every child needs a name.
func adaptMapping(b *Builder, in Input) (Result, error) {
	props := jsonschema.New()
	var required []string
	for i, child := range in.Node.Children {
		if child != nil && child.Name == "" {
			return Result{}, fmt.Errorf("mapping child %d has no name", i)
		}
		res, err := b.Property(child)
		if err != nil {
			return Result{}, err
		}
		if res.Ignored() {
			continue
		}
		props.Set(child.Name, res.Schema())
		if in.Draft == Draft4 && child.Required {
			required = append(required, child.Name)
		}
	}

	s := jsonschema.New().
		Set("type", "object").
		Set("properties", props)
	if len(required) > 0 {
		s.Set("required", required)
	}
	return Emit(s), nil
}

// adaptSequence converts a sequence into an array of its single child.
//
// For draft 4 a required item adds required: [item name] to the array
// itself. This describes the item, not the array; it is kept for
// compatibility with existing output.
func adaptSequence(b *Builder, in Input) (Result, error) {
	s := jsonschema.New().Set("type", "array")
	if len(in.Node.Children) == 0 {
		return Emit(s), nil
	}
	item := in.Node.Children[0]
	res, err := b.Property(item)
	if err != nil {
		return Result{}, err
	}
	if res.Ignored() {
		return Emit(s), nil
	}
	s.Set("items", res.Schema())
	if in.Draft == Draft4 && item.Required && item.Name != "" {
		s.Set("required", []string{item.Name})
	}
	return Emit(s), nil
}

// adaptSet converts a set into an array of unique items without an item
// schema. Validators are not applied to sets.
func adaptSet(*Builder, Input) (Result, error) {
	return Final(jsonschema.New().
		Set("type", "array").
		Set("uniqueItems", true)), nil
}

// adaptTuple converts a tuple into a fixed-length positional array.
// minItems and maxItems count every declared slot, ignored ones included.
func adaptTuple(b *Builder, in Input) (Result, error) {
	n := len(in.Node.Children)
	items := make([]*jsonschema.Schema, 0, n)
	var required []string
	for _, child := range in.Node.Children {
		res, err := b.Property(child)
		if err != nil {
			return Result{}, err
		}
		if res.Ignored() {
			continue
		}
		items = append(items, res.Schema())
		if in.Draft == Draft4 && child.Required && child.Name != "" {
			required = append(required, child.Name)
		}
	}

	s := jsonschema.New().Set("type", "array")
	if len(items) > 0 {
		s.Set("items", items)
	}
	s.Set("minItems", n).Set("maxItems", n)
	if len(required) > 0 {
		s.Set("required", required)
	}
	return Emit(s), nil
}
