package hammer

import (
	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

// ToJSONSchema converts the tree rooted at root into a JSON Schema document.
// Without options the output targets draft 4 and includes types.
func ToJSONSchema(root *schema.Node, opts ...Option) (*jsonschema.Schema, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Convert(root, o)
}

// Convert is ToJSONSchema with an explicit Options value, typically derived
// from DefaultOptions.
//
// The registry is snapshotted once, so registrations made while a conversion
// runs do not affect it. No partial document is returned on error.
func Convert(root *schema.Node, o Options) (*jsonschema.Schema, error) {
	if !o.Draft.Supported() {
		return nil, &ConfigError{Draft: o.Draft}
	}
	reg := o.Registry
	if reg == nil {
		reg = Default()
	}
	b := newBuilder(reg.Clone(), o)
	if root != nil {
		b.log.Debug("converting schema", "root", root.Name, "nodes", countNodes(root), "draft", int(o.Draft))
	}

	res, err := b.build(root)
	if err != nil {
		return nil, err
	}
	out := jsonschema.New()
	if o.SchemaURI {
		out.Set("$schema", o.Draft.URI())
	}
	if !res.Ignored() {
		out.Merge(res.Schema())
	}
	return out, nil
}

func countNodes(root *schema.Node) int {
	n := 0
	root.Walk(func([]string, *schema.Node) bool {
		n++
		return true
	})
	return n
}
