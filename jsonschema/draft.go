package jsonschema

import "fmt"

// Draft is a JSON Schema draft version.
type Draft int

const (
	Draft3 Draft = 3
	Draft4 Draft = 4
)

// Drafts lists the supported drafts, oldest first.
var Drafts = []Draft{Draft3, Draft4}

// Supported reports whether d is one of Drafts.
func (d Draft) Supported() bool {
	for _, s := range Drafts {
		if d == s {
			return true
		}
	}
	return false
}

// URI returns the meta-schema URI of d, or "" when d is unsupported.
func (d Draft) URI() string {
	switch d {
	case Draft3:
		return "http://json-schema.org/draft-03/schema#"
	case Draft4:
		return "http://json-schema.org/draft-04/schema#"
	}
	return ""
}

func (d Draft) String() string { return fmt.Sprintf("draft-%02d", int(d)) }
