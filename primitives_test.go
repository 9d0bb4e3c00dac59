package hammer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/hammer"
	"github.com/reoring/hammer/schema"
)

func field(t *testing.T, node *schema.Node, opts ...hammer.Option) map[string]any {
	t.Helper()
	doc, err := hammer.ToJSONSchema(schema.Mapping("wrapper", node), opts...)
	require.NoError(t, err)
	if len(opts) == 0 {
		requireDraft4(t, doc)
	}
	prop := doc.Schema("properties").Schema(node.Name)
	require.NotNil(t, prop)
	return prop.Map()
}

func TestScalars(t *testing.T) {
	tests := map[string]struct {
		node *schema.Node
		want map[string]any
	}{
		"int":      {schema.Int("v"), map[string]any{"type": "number"}},
		"string":   {schema.String("v"), map[string]any{"type": "string"}},
		"bool":     {schema.Bool("v"), map[string]any{"type": "boolean"}},
		"date":     {schema.Date("v"), map[string]any{"type": "string", "format": "date-time"}},
		"time":     {schema.Time("v"), map[string]any{"type": "string", "format": "date-time"}},
		"datetime": {schema.DateTime("v"), map[string]any{"type": "string", "format": "date-time"}},
		"kind tag without type": {
			&schema.Node{Name: "v", Kind: schema.KindInt},
			map[string]any{"type": "number"},
		},
		"pointer type": {
			schema.New("v", &schema.StringType{}),
			map[string]any{"type": "string"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, field(t, tc.node))
		})
	}
}

func TestFloatLike(t *testing.T) {
	for _, node := range []*schema.Node{schema.Float("v"), schema.Decimal("v"), schema.Money("v")} {
		t.Run(node.TypeName(), func(t *testing.T) {
			got4 := field(t, node)
			assert.Equal(t, "number", got4["type"])
			assert.Equal(t, map[string]any{"multipleOf": 1}, got4["not"])

			got3 := field(t, node, hammer.WithDraft(hammer.Draft3))
			assert.Equal(t, "number", got3["type"])
			assert.Equal(t, map[string]any{"divisibleBy": 1}, got3["not"])
		})
	}
}

func TestValidators(t *testing.T) {
	const emailAddress = `(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`

	tests := map[string]struct {
		node *schema.Node
		want map[string]any
	}{
		"regex": {
			schema.String("v").Validate(schema.Regex{Pattern: emailAddress}),
			map[string]any{"type": "string", "pattern": emailAddress},
		},
		"regex pointer": {
			schema.String("v").Validate(&schema.Regex{Pattern: "^a+$"}),
			map[string]any{"type": "string", "pattern": "^a+$"},
		},
		"email": {
			schema.String("v").Validate(schema.Email{}),
			map[string]any{"type": "string", "format": "email"},
		},
		"url": {
			schema.String("v").Validate(schema.URL{}),
			map[string]any{"type": "string", "pattern": schema.URLPattern},
		},
		"range": {
			schema.Int("v").Validate(schema.Range{Min: 1, Max: 5}),
			map[string]any{"type": "number", "minimum": 1, "maximum": 5},
		},
		"range without max": {
			schema.Int("v").Validate(schema.Range{Min: 1}),
			map[string]any{"type": "number", "minimum": 1},
		},
		"range pointer": {
			schema.Int("v").Validate(&schema.Range{Min: 2, Max: 4}),
			map[string]any{"type": "number", "minimum": 2, "maximum": 4},
		},
		"length": {
			schema.String("v").Validate(schema.Length{Min: 1, Max: 5}),
			map[string]any{"type": "string", "minLength": 1, "maxLength": 5},
		},
		"one of keeps order": {
			schema.Int("v").Validate(schema.OneOf{Choices: []any{3, 1, 2}}),
			map[string]any{"type": "number", "enum": []any{3, 1, 2}},
		},
		"func is ignored": {
			schema.Int("v").Validate(schema.NewFunc("even", func(any) error { return nil })),
			map[string]any{"type": "number"},
		},
		"all is ignored": {
			schema.String("v").Validate(schema.All{Validators: []schema.Validator{schema.Email{}}}),
			map[string]any{"type": "string"},
		},
		"contains only is ignored": {
			schema.String("v").Validate(schema.ContainsOnly{Choices: []any{"a"}}),
			map[string]any{"type": "string"},
		},
		"luhn is ignored": {
			schema.String("v").Validate(schema.Luhn{}),
			map[string]any{"type": "string"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, field(t, tc.node))
		})
	}
}

func TestRange_MaxOnly(t *testing.T) {
	got := field(t, schema.Int("v").Validate(schema.Range{Max: 10}))
	assert.Equal(t, map[string]any{"type": "number", "maximum": 10}, got)
}
