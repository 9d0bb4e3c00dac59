package jsonschema

import (
	"bytes"
	"errors"
	"fmt"

	sjs "github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	// ErrDraftNotCheckable is returned by Check for drafts the meta-schema
	// compiler does not know.
	ErrDraftNotCheckable = errors.New("jsonschema: draft cannot be checked")

	// ErrMetaSchema is returned by Check when a document does not conform to
	// its draft's meta-schema.
	ErrMetaSchema = errors.New("jsonschema: document does not conform to meta-schema")
)

const checkURL = "mem:///hammer/schema.json"

// Check compiles s as a schema of draft d, which validates it against the
// draft's meta-schema. Only Draft4 is checkable.
func Check(s *Schema, d Draft) error {
	if d != Draft4 {
		return fmt.Errorf("%w: %s", ErrDraftNotCheckable, d)
	}
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("jsonschema: encode: %w", err)
	}
	doc, err := sjs.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("jsonschema: decode: %w", err)
	}
	c := sjs.NewCompiler()
	c.DefaultDraft(sjs.Draft4)
	if err := c.AddResource(checkURL, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMetaSchema, err)
	}
	if _, err := c.Compile(checkURL); err != nil {
		return fmt.Errorf("%w: %w", ErrMetaSchema, err)
	}
	return nil
}
