// Package schema defines the source schema tree consumed by hammer.
//
// A tree is made of *Node values. Each node carries a semantic Kind tag, a
// concrete Type implementation, an ordered child list and an optional
// Validator. The package only describes schemas; it does not validate or
// coerce values.
//
// Entry points
//   - Mapping/Sequence/Tuple/Set: container nodes.
//   - Int/String/Bool/Float/Decimal/Money/Date/Time/DateTime: scalar nodes.
//   - New: a node for any Type, including user-defined ones.
//   - Load/LoadFile: build a tree from a YAML or JSON description.
//
// Example
//
//	friend := schema.Tuple("friend",
//	    schema.Int("rank").Validate(schema.Range{Min: 0, Max: 9999}),
//	    schema.String("name"),
//	    schema.Bool("still_friends"),
//	)
//	person := schema.Mapping("person",
//	    schema.String("name"),
//	    schema.Int("age").Validate(schema.Range{Min: 0, Max: 200}),
//	    schema.Sequence("friends", friend),
//	)
//
// File layout
//   - kind.go: Kind tags and the name table used by the loader.
//   - node.go: Node and its fluent modifiers.
//   - types.go: built-in Type implementations and node constructors.
//   - validators.go: built-in Validator value objects.
//   - load.go: YAML/JSON tree descriptions.
package schema
