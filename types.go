package hammer

import (
	"log/slog"

	"github.com/reoring/hammer/jsonschema"
)

// Draft is a target JSON Schema draft version.
type Draft = jsonschema.Draft

const (
	Draft3 = jsonschema.Draft3
	Draft4 = jsonschema.Draft4
)

// DefaultDraft is used when no draft is requested.
const DefaultDraft = Draft4

// Options bundles conversion settings. Start from DefaultOptions.
type Options struct {
	Draft Draft
	// IncludeTypes keeps the "type" keyword on every property.
	IncludeTypes bool
	// Annotations copies node titles and descriptions into the output.
	Annotations bool
	// SchemaURI adds "$schema" with the draft's meta-schema URI to the root.
	SchemaURI bool
	// Registry resolves adapters. Nil means Default().
	Registry *Registry
	// Logger receives debug traces of adapter resolution. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns draft 4 output with types included.
func DefaultOptions() Options {
	return Options{Draft: DefaultDraft, IncludeTypes: true}
}

// Option mutates Options.
type Option func(*Options)

func WithDraft(d Draft) Option         { return func(o *Options) { o.Draft = d } }
func WithIncludeTypes(b bool) Option   { return func(o *Options) { o.IncludeTypes = b } }
func WithAnnotations(b bool) Option    { return func(o *Options) { o.Annotations = b } }
func WithSchemaURI(b bool) Option      { return func(o *Options) { o.SchemaURI = b } }
func WithRegistry(r *Registry) Option  { return func(o *Options) { o.Registry = r } }
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }
