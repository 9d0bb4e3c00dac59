// Package hammer converts schema trees into JSON Schema documents.
//
// A tree (see package schema) is converted node by node. Each node is handed
// to an adapter looked up in a Registry by the node's Kind tag, falling back
// to the dynamic type of its Type. Container adapters (mapping, sequence,
// set, tuple) recurse into their children; scalar adapters produce a leaf.
// A node's validator, when it has an adapter, contributes constraint
// keywords to the node's property.
//
// Draft policy:
//   - Draft 4 lists required child names on the parent ("required": [...]).
//   - Draft 3 marks each required property inline ("required": true).
//   - Any draft marks nodes dropped when missing with "optional": true.
//
// Typical usage:
//
//	doc, err := hammer.ToJSONSchema(person)
//	doc, err := hammer.ToJSONSchema(person, hammer.WithDraft(hammer.Draft3))
//	b, err := doc.JSON()
//
// Extending:
//
//	type Secret struct{ schema.StringType }
//
//	hammer.Adapts(hammer.IgnoreAdapter, hammer.TypeKey(Secret{}))
//
//	positive := schema.NewFunc("positive", checkPositive)
//	hammer.Adapts(func(*hammer.Builder, hammer.Input) (hammer.Result, error) {
//	    return hammer.Emit(jsonschema.New().Set("minimum", 0)), nil
//	}, hammer.FuncKey(positive))
//
// Adapters return Ignore to drop a node (or a validator's keywords) on
// purpose; returning an error aborts the whole conversion.
//
// Adapters registered with Adapts live in the process-wide Default registry.
// Use NewDefaultRegistry and WithRegistry to keep registrations scoped.
package hammer
