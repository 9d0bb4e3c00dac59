package schema

// Validator is a constraint attached to a node. hammer looks validators up by
// their dynamic type, or by identity for *Func.
type Validator interface {
	ValidatorName() string
}

// URLPattern matches absolute URLs with a scheme and a host.
const URLPattern = `^[A-Za-z][A-Za-z0-9+.-]*://[^\s/?#]+(?:[/?#]\S*)?$`

// Regex requires string values to match Pattern.
type Regex struct {
	Pattern string
}

// Email requires string values to be email addresses.
type Email struct{}

// URL requires string values to be absolute URLs.
type URL struct{}

// Range bounds numeric values. A nil bound is not enforced.
type Range struct {
	Min any
	Max any
}

// Length bounds the length of strings.
type Length struct {
	Min int
	Max int
}

// OneOf restricts values to Choices.
type OneOf struct {
	Choices []any
}

// All requires every validator in Validators to pass.
type All struct {
	Validators []Validator
}

// ContainsOnly restricts the members of a collection to Choices.
type ContainsOnly struct {
	Choices []any
}

// Luhn requires a value that passes the Luhn checksum.
type Luhn struct{}

// Func is an arbitrary check. Funcs are compared by pointer identity, so the
// same *Func must be used when registering an adapter for it.
type Func struct {
	Name  string
	Check func(any) error
}

// NewFunc returns a Func named name wrapping check.
func NewFunc(name string, check func(any) error) *Func {
	return &Func{Name: name, Check: check}
}

func (Regex) ValidatorName() string        { return "regex" }
func (Email) ValidatorName() string        { return "email" }
func (URL) ValidatorName() string          { return "url" }
func (Range) ValidatorName() string        { return "range" }
func (Length) ValidatorName() string       { return "length" }
func (OneOf) ValidatorName() string        { return "one_of" }
func (All) ValidatorName() string          { return "all" }
func (ContainsOnly) ValidatorName() string { return "contains_only" }
func (Luhn) ValidatorName() string         { return "luhn" }

func (f *Func) ValidatorName() string {
	if f == nil || f.Name == "" {
		return "func"
	}
	return f.Name
}

// Pattern returns the regular expression the URL validator enforces.
func (URL) Pattern() string { return URLPattern }
