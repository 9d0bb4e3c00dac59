package hammer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/hammer"
	"github.com/reoring/hammer/schema"
)

func TestToJSONSchema_Defaults(t *testing.T) {
	doc, err := hammer.ToJSONSchema(personSchema())
	require.NoError(t, err)

	assert.Equal(t, "object", doc.Type())
	assert.Equal(t, []string{"name", "age", "friends", "phones", "tags"}, doc.Schema("properties").Keys())
	assert.Equal(t, []string{"name", "age", "friends", "tags"}, doc.Strings("required"))
	assert.False(t, doc.Has("$schema"))
	requireDraft4(t, doc)
}

func TestToJSONSchema_UnsupportedDraft(t *testing.T) {
	for _, d := range []hammer.Draft{0, 2, 5, 7} {
		doc, err := hammer.ToJSONSchema(personSchema(), hammer.WithDraft(d))
		assert.Nil(t, doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, hammer.ErrUnsupportedDraft)
		assert.Equal(t, hammer.CodeUnsupportedDraft, hammer.ErrorCode(err))
	}
}

func TestToJSONSchema_UnsupportedDraftBeforeTraversal(t *testing.T) {
	// An unresolvable tree still reports the configuration error first.
	_, err := hammer.ToJSONSchema(&schema.Node{Kind: "nope"}, hammer.WithDraft(9))
	assert.ErrorIs(t, err, hammer.ErrUnsupportedDraft)
	assert.NotErrorIs(t, err, hammer.ErrInvalid)
}

func TestToJSONSchema_Idempotent(t *testing.T) {
	root := personSchema()
	for _, d := range []hammer.Draft{hammer.Draft3, hammer.Draft4} {
		a, err := hammer.ToJSONSchema(root, hammer.WithDraft(d))
		require.NoError(t, err)
		b, err := hammer.ToJSONSchema(root, hammer.WithDraft(d))
		require.NoError(t, err)

		aj, err := a.JSON()
		require.NoError(t, err)
		bj, err := b.JSON()
		require.NoError(t, err)
		assert.Equal(t, string(aj), string(bj))
	}
}

func TestToJSONSchema_SchemaURI(t *testing.T) {
	doc, err := hammer.ToJSONSchema(phoneSchema(), hammer.WithSchemaURI(true))
	require.NoError(t, err)
	assert.Equal(t, "$schema", doc.Keys()[0])
	uri, _ := doc.Get("$schema")
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", uri)
	requireDraft4(t, doc)

	doc, err = hammer.ToJSONSchema(phoneSchema(), hammer.WithSchemaURI(true), hammer.WithDraft(hammer.Draft3))
	require.NoError(t, err)
	uri, _ = doc.Get("$schema")
	assert.Equal(t, "http://json-schema.org/draft-03/schema#", uri)
}

func TestToJSONSchema_JSONOrder(t *testing.T) {
	doc, err := hammer.ToJSONSchema(friendSchema())
	require.NoError(t, err)

	b, err := doc.MarshalJSON()
	require.NoError(t, err)
	want := `{"type":"array","items":[` +
		`{"type":"number","minimum":0,"maximum":9999},` +
		`{"type":"string"},` +
		`{"type":"boolean"}],` +
		`"minItems":3,"maxItems":3,"required":["rank","name","still_friends"]}`
	assert.Equal(t, want, string(b))
}

func TestConvert_ExplicitOptions(t *testing.T) {
	o := hammer.DefaultOptions()
	o.Draft = hammer.Draft3
	o.IncludeTypes = false

	doc, err := hammer.Convert(schema.Mapping("m", schema.String("a")), o)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"properties": map[string]any{"a": map[string]any{"required": true}},
		"required":   true,
	}, doc.Map())
}

func TestToJSONSchema_NilRoot(t *testing.T) {
	_, err := hammer.ToJSONSchema(nil)
	assert.ErrorIs(t, err, hammer.ErrInvalid)
}
