package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// ErrLoad is matched by every error returned from the loaders.
var ErrLoad = errors.New("schema: load")

// LoadError describes one problem found in a tree description.
type LoadError struct {
	Path string // slash separated node names, "/" for the root
	Msg  string
}

func (e *LoadError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Msg) }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// LoadFile reads a tree description from path. Files ending in .json are
// decoded as JSON, everything else as YAML.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data)
	}
	return LoadYAML(data)
}

// LoadJSON builds a tree from a JSON description.
func LoadJSON(data []byte) (*Node, error) {
	var root any
	if err := j.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrLoad, err)
	}
	return fromDocument(root)
}

// LoadYAML builds a tree from the first document of a YAML description.
func LoadYAML(data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrLoad)
		}
		return nil, fmt.Errorf("%w: invalid YAML: %w", ErrLoad, err)
	}
	return fromDocument(root)
}

// Load accepts either YAML or JSON; JSON is valid YAML.
func Load(data []byte) (*Node, error) { return LoadYAML(data) }

func fromDocument(doc any) (*Node, error) {
	m := yamlAnyToStringMap(doc)
	if m == nil {
		return nil, fmt.Errorf("%w: root must be a mapping", ErrLoad)
	}
	l := &loader{}
	n := l.node("/", m)
	if err := l.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return n, nil
}

type loader struct {
	errs *multierror.Error
}

func (l *loader) fail(path, format string, a ...any) {
	l.errs = multierror.Append(l.errs, &LoadError{Path: path, Msg: fmt.Sprintf(format, a...)})
}

func (l *loader) node(path string, raw map[string]any) *Node {
	m := normalizeKeys(raw)
	n := &Node{Required: true}
	n.Name, _ = m["name"].(string)
	n.Title, _ = m["title"].(string)
	n.Description, _ = m["description"].(string)

	kindName, _ := m["kind"].(string)
	if kindName == "" {
		l.fail(path, "missing kind")
	} else {
		n.Kind = ParseKind(kindName)
		n.Type = TypeOf(n.Kind)
	}

	if missing, ok := m["missing"].(string); ok {
		if strings.EqualFold(missing, "drop") {
			n.Drop()
		} else {
			n.Required = false
		}
	}
	if v, ok := m["required"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			l.fail(path, "required must be a boolean, got %T", v)
		}
		n.Required = b
	}

	if v, ok := m["validator"]; ok {
		n.Validator = l.validator(path, v)
	}

	if item, ok := m["items"]; ok {
		im := yamlAnyToStringMap(item)
		if im == nil {
			l.fail(path, "items must be a mapping")
		} else {
			n.Children = append(n.Children, l.node(childPath(path, im), im))
		}
	}
	if cs, ok := m["children"]; ok {
		list, isList := cs.([]any)
		if !isList {
			l.fail(path, "children must be a list")
		}
		seen := map[string]bool{}
		for i, c := range list {
			cm := yamlAnyToStringMap(c)
			if cm == nil {
				l.fail(path, "child %d must be a mapping", i)
				continue
			}
			child := l.node(childPath(path, cm), cm)
			if n.Kind != KindSequence {
				if seen[child.Name] {
					l.fail(path, "duplicate child name %q", child.Name)
				}
				seen[child.Name] = true
			}
			n.Children = append(n.Children, child)
		}
	}

	switch n.Kind {
	case KindSequence:
		if len(n.Children) != 1 {
			l.fail(path, "sequence needs exactly one item, got %d", len(n.Children))
		}
	case KindSet:
		if len(n.Children) > 0 {
			l.fail(path, "set does not take children")
		}
	case KindMapping, KindTuple:
	default:
		if n.Kind.IsBuiltin() && len(n.Children) > 0 {
			l.fail(path, "%s does not take children", n.Kind)
		}
	}
	return n
}

func (l *loader) validator(path string, v any) Validator {
	if name, ok := v.(string); ok {
		return l.namedValidator(path, strcase.ToSnake(name), nil)
	}
	m := yamlAnyToStringMap(v)
	if len(m) != 1 {
		l.fail(path, "validator must be a name or a single-key mapping")
		return nil
	}
	for k, arg := range m {
		return l.namedValidator(path, strcase.ToSnake(k), arg)
	}
	return nil
}

func (l *loader) namedValidator(path, name string, arg any) Validator {
	switch name {
	case "email":
		return Email{}
	case "url":
		return URL{}
	case "luhn":
		return Luhn{}
	case "regex", "pattern":
		p, ok := arg.(string)
		if !ok {
			l.fail(path, "regex needs a pattern string")
		}
		return Regex{Pattern: p}
	case "range":
		m := normalizeKeys(yamlAnyToStringMap(arg))
		if m == nil {
			l.fail(path, "range needs a mapping with min and/or max")
			return nil
		}
		return Range{Min: m["min"], Max: m["max"]}
	case "length":
		m := normalizeKeys(yamlAnyToStringMap(arg))
		minV, okMin := toInt(m["min"])
		maxV, okMax := toInt(m["max"])
		if !okMin || !okMax {
			l.fail(path, "length needs integer min and max")
		}
		return Length{Min: minV, Max: maxV}
	case "one_of", "enum":
		choices, ok := arg.([]any)
		if !ok {
			l.fail(path, "%s needs a list of choices", name)
		}
		return OneOf{Choices: choices}
	case "contains_only":
		choices, ok := arg.([]any)
		if !ok {
			l.fail(path, "contains_only needs a list of choices")
		}
		return ContainsOnly{Choices: choices}
	case "all":
		list, ok := arg.([]any)
		if !ok {
			l.fail(path, "all needs a list of validators")
			return All{}
		}
		all := All{}
		for _, item := range list {
			if v := l.validator(path, item); v != nil {
				all.Validators = append(all.Validators, v)
			}
		}
		return all
	default:
		l.fail(path, "unknown validator %q", name)
		return nil
	}
}

func childPath(parent string, m map[string]any) string {
	name, _ := m["name"].(string)
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

func normalizeKeys(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strcase.ToSnake(k)] = v
	}
	return out
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint64:
		return int(t), true
	case float64:
		if t == math.Trunc(t) {
			return int(t), true
		}
	}
	return 0, false
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
