package hammer

import (
	"errors"
	"fmt"

	"github.com/reoring/hammer/i18n"
	"github.com/reoring/hammer/schema"
)

// Error codes.
const (
	CodeUnresolvableNode = "unresolvable_node"
	CodeUnsupportedDraft = "unsupported_draft"
	CodeAdapterFailed    = "adapter_failed"
	CodeInvalidAdapter   = "invalid_adapter"
)

var (
	// ErrInvalid is matched by *InvalidError.
	ErrInvalid = errors.New("invalid node")

	// ErrUnsupportedDraft is matched by *ConfigError.
	ErrUnsupportedDraft = errors.New("unsupported draft")

	// ErrAdapter is matched by *AdapterError.
	ErrAdapter = errors.New("adapter failed")

	// ErrRegistration is matched by *RegistrationError.
	ErrRegistration = errors.New("invalid registration")
)

// InvalidError reports a node for which no adapter is registered.
type InvalidError struct {
	Path  string // JSON Pointer of the node in the source tree
	Node  *schema.Node
	Draft Draft
}

func (e *InvalidError) Error() string {
	detail := "nil node"
	if e.Node != nil {
		detail = fmt.Sprintf("kind=%q type=%q", e.Node.Kind, e.Node.TypeName())
	}
	return fmt.Sprintf("%s at %s: %s", i18n.T(CodeUnresolvableNode, nil), e.Path, detail)
}

func (e *InvalidError) Code() string         { return CodeUnresolvableNode }
func (e *InvalidError) Is(target error) bool { return target == ErrInvalid }

// ConfigError reports an unusable conversion configuration.
type ConfigError struct {
	Draft Draft
}

func (e *ConfigError) Error() string {
	return i18n.T(CodeUnsupportedDraft, map[string]string{"detail": fmt.Sprintf("%d", int(e.Draft))})
}

func (e *ConfigError) Code() string         { return CodeUnsupportedDraft }
func (e *ConfigError) Is(target error) bool { return target == ErrUnsupportedDraft }

// AdapterError wraps an error returned by an adapter.
type AdapterError struct {
	Path string
	Key  Key
	Err  error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s at %s (%s): %v", i18n.T(CodeAdapterFailed, nil), e.Path, e.Key, e.Err)
}

func (e *AdapterError) Code() string         { return CodeAdapterFailed }
func (e *AdapterError) Unwrap() error        { return e.Err }
func (e *AdapterError) Is(target error) bool { return target == ErrAdapter }

// RegistrationError reports an unusable Registry.Register call.
type RegistrationError struct {
	Reason string
	Err    error // optional cause, such as a *ConfigError
}

func (e *RegistrationError) Error() string {
	detail := e.Reason
	if e.Err != nil {
		detail += ": " + e.Err.Error()
	}
	return i18n.T(CodeInvalidAdapter, map[string]string{"detail": detail})
}

func (e *RegistrationError) Code() string         { return CodeInvalidAdapter }
func (e *RegistrationError) Unwrap() error        { return e.Err }
func (e *RegistrationError) Is(target error) bool { return target == ErrRegistration }

// ErrorCode returns the code of the first hammer error in err's chain, or "".
func ErrorCode(err error) string {
	var c interface{ Code() string }
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}
