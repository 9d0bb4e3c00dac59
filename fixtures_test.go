package hammer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

func friendSchema() *schema.Node {
	return schema.Tuple("friend",
		schema.Int("rank").Validate(schema.Range{Min: 0, Max: 9999}),
		schema.String("name"),
		schema.Bool("still_friends"),
	)
}

func friendsSchema() *schema.Node {
	return schema.Sequence("friends", friendSchema())
}

func phoneSchema() *schema.Node {
	return schema.Mapping("phone",
		schema.String("location").Validate(schema.OneOf{Choices: []any{"home", "work"}}),
		schema.String("number"),
	)
}

func personSchema() *schema.Node {
	return schema.Mapping("person",
		schema.String("name"),
		schema.Int("age").Validate(schema.Range{Min: 0, Max: 200}),
		friendsSchema(),
		schema.Mapping("phones", phoneSchema()).Optional(),
		schema.Set("tags"),
	)
}

// requireDraft4 checks doc against the draft 4 meta-schema.
func requireDraft4(t *testing.T, doc *jsonschema.Schema) {
	t.Helper()
	require.NoError(t, jsonschema.Check(doc, jsonschema.Draft4))
}

// eachProperty visits every schema reachable through properties and items.
func eachProperty(s *jsonschema.Schema, fn func(*jsonschema.Schema)) {
	if s == nil {
		return
	}
	fn(s)
	if props := s.Schema("properties"); props != nil {
		for _, k := range props.Keys() {
			eachProperty(props.Schema(k), fn)
		}
	}
	eachProperty(s.Schema("items"), fn)
	for _, it := range s.Schemas("items") {
		eachProperty(it, fn)
	}
}
