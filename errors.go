package mimerender

import "errors"

var (
	// ErrNoRenderers is returned by New when no renderer was registered.
	ErrNoRenderers = errors.New("no renderers registered")

	// ErrDefaultNotRegistered is returned by New when the default name has no
	// renderer.
	ErrDefaultNotRegistered = errors.New("default name has no renderer")

	// ErrNoErrorRenderers is returned by New when error mappings are
	// configured without any error renderer to serialize them.
	ErrNoErrorRenderers = errors.New("error mappings require an error renderer")

	// ErrInvalidMapping is returned by New for a mapping with a nil target or
	// a status outside the HTTP range.
	ErrInvalidMapping = errors.New("invalid error mapping")
)

// ErrorMapping pairs a target error with the response status used when a
// handler error matches it. Targets are checked in registration order with
// errors.Is, so wrapped errors match and the first hit wins; register
// specific errors before the ones they wrap.
type ErrorMapping struct {
	Target error
	Status int
}
