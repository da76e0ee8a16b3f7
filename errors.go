package maple

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the compilation engine.
var (
	ErrMalformedStyle = errors.New("malformed style value")
	ErrInvalidColor   = errors.New("invalid color")
	ErrMissingColor   = errors.New("missing color")
	ErrDuplicateSlot  = errors.New("duplicate terminal slot")
	ErrKeyCollision   = errors.New("style key collision")

	ErrClipboardUnsupported = errors.New("clipboard not supported on this platform")
)

// StyleError reports a style tree value that cannot be flattened.
type StyleError struct {
	Path  string // Dotted path of the offending value
	Value any
}

// Error implements the error interface.
func (e *StyleError) Error() string {
	return fmt.Sprintf("%s: %T value at %q", ErrMalformedStyle, e.Value, e.Path)
}

// Unwrap returns ErrMalformedStyle.
func (e *StyleError) Unwrap() error {
	return ErrMalformedStyle
}

// ColorError reports a role referenced by a rule table that the scheme does not define.
type ColorError struct {
	Palette string // "base", "token" or "ui"
	Role    string
}

// Error implements the error interface.
func (e *ColorError) Error() string {
	return fmt.Sprintf("%s: %s role %q", ErrMissingColor, e.Palette, e.Role)
}

// Unwrap returns ErrMissingColor.
func (e *ColorError) Unwrap() error {
	return ErrMissingColor
}

// CollisionError lists flat keys written more than once while flattening.
type CollisionError struct {
	Paths []string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrKeyCollision, strings.Join(e.Paths, ", "))
}

// Unwrap returns ErrKeyCollision.
func (e *CollisionError) Unwrap() error {
	return ErrKeyCollision
}

// SchemeError attributes a compilation failure to a color scheme.
type SchemeError struct {
	Scheme string
	Err    error
}

// Error implements the error interface.
func (e *SchemeError) Error() string {
	return fmt.Sprintf("scheme %q: %v", e.Scheme, e.Err)
}

// Unwrap returns the underlying error.
func (e *SchemeError) Unwrap() error {
	return e.Err
}
