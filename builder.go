package hammer

import (
	"errors"
	"log/slog"

	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

// Builder converts nodes into JSON Schema properties. Adapters receive the
// Builder positioned at the node they convert.
type Builder struct {
	reg  *Registry
	opts Options
	log  *slog.Logger
	path pathRef
	idx  int
}

func newBuilder(reg *Registry, opts Options) *Builder {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Builder{reg: reg, opts: opts, log: l, idx: -1}
}

// Draft returns the target draft.
func (b *Builder) Draft() Draft { return b.opts.Draft }

// Options returns the conversion options.
func (b *Builder) Options() Options { return b.opts }

// Path returns the JSON Pointer of the current node in the source tree.
func (b *Builder) Path() string { return b.path.Pointer() }

// Property converts child, a node below the current one. Nodes without a
// name are addressed by their position among the current node's children.
func (b *Builder) Property(child *schema.Node) (Result, error) {
	b.idx++
	cb := *b
	if child != nil && child.Name != "" {
		cb.path = b.path.Field(child.Name)
	} else {
		cb.path = b.path.Index(b.idx)
	}
	cb.idx = -1
	return cb.build(child)
}

func (b *Builder) build(node *schema.Node) (Result, error) {
	draft := b.opts.Draft
	if node == nil {
		return Result{}, &InvalidError{Path: b.Path(), Draft: draft}
	}

	fn, key, ok := b.resolveNode(node)
	if !ok {
		return Result{}, &InvalidError{Path: b.Path(), Node: node, Draft: draft}
	}
	b.log.Debug("adapting node", "path", b.Path(), "key", key.String(), "draft", int(draft))

	res, err := fn(b, Input{Node: node, Draft: draft})
	if err != nil {
		return Result{}, b.wrap(key, err)
	}
	if res.Ignored() {
		b.log.Debug("node ignored", "path", b.Path())
		return Ignore, nil
	}
	prop := res.Schema()
	if prop == nil {
		prop = jsonschema.New()
		res.schema = prop
	}

	applyRequiredPolicy(prop, node, draft)

	if !b.opts.IncludeTypes {
		prop.Delete("type")
	}

	if node.Validator != nil && !res.final {
		if err := b.mergeValidator(prop, node); err != nil {
			return Result{}, err
		}
	}

	if b.opts.Annotations {
		if node.Title != "" {
			prop.Set("title", node.Title)
		}
		if node.Description != "" {
			prop.Set("description", node.Description)
		}
	}
	return res, nil
}

// resolveNode checks the semantic kind tag first, then the dynamic type of
// the node's Type.
func (b *Builder) resolveNode(node *schema.Node) (AdapterFunc, Key, bool) {
	for _, k := range []Key{KindKey(node.Kind), TypeKey(node.Type)} {
		if k.IsZero() {
			continue
		}
		if fn, ok := b.reg.Resolve(b.opts.Draft, k); ok {
			return fn, k, true
		}
	}
	return nil, Key{}, false
}

func (b *Builder) mergeValidator(prop *jsonschema.Schema, node *schema.Node) error {
	v := node.Validator
	keys := []Key{ValidatorKey(v)}
	if _, isFunc := v.(*schema.Func); isFunc {
		keys = append(keys, TypeKey(v))
	}
	for _, k := range keys {
		fn, ok := b.reg.Resolve(b.opts.Draft, k)
		if !ok {
			continue
		}
		res, err := fn(b, Input{Node: node, Validator: v, Draft: b.opts.Draft})
		if err != nil {
			return b.wrap(k, err)
		}
		if res.Ignored() {
			b.log.Debug("validator ignored", "path", b.Path(), "validator", v.ValidatorName())
			return nil
		}
		prop.Merge(res.Schema())
		return nil
	}
	b.log.Debug("no adapter for validator", "path", b.Path(), "validator", v.ValidatorName())
	return nil
}

// wrap leaves errors raised further down the tree untouched so that the
// reported path is the deepest one.
func (b *Builder) wrap(k Key, err error) error {
	var ie *InvalidError
	var ae *AdapterError
	if errors.As(err, &ie) || errors.As(err, &ae) {
		return err
	}
	return &AdapterError{Path: b.Path(), Key: k, Err: err}
}

// applyRequiredPolicy annotates the node's own property. Draft 4 lists
// required names on the parent instead; see the container adapters.
func applyRequiredPolicy(prop *jsonschema.Schema, node *schema.Node, draft Draft) {
	if draft == Draft3 && node.Required {
		prop.Set("required", true)
	}
	if node.MissingDrop {
		prop.Set("optional", true)
	}
}
