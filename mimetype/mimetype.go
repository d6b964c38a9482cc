package mimetype

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUnknownName is returned when a short name has no registered MIME types.
	ErrUnknownName = errors.New("unknown media type name")

	// ErrInvalidName is returned when a short name is empty or contains
	// characters that cannot appear in a registration key.
	ErrInvalidName = errors.New("invalid media type name")

	// ErrInvalidMimeType is returned when a registered MIME string is not of
	// the "type/subtype" form.
	ErrInvalidMimeType = errors.New("invalid mime type")
)

// Built-in short names.
const (
	XML   = "xml"
	JSON  = "json"
	YAML  = "yaml"
	XHTML = "xhtml"
	HTML  = "html"
	TXT   = "txt"
	CSV   = "csv"
)

// builtin returns a fresh copy of the built-in name table. The first entry
// per name is canonical; the rest are aliases matched during negotiation.
func builtin() map[string][]string {
	return map[string][]string{
		XML:   {"application/xml", "text/xml", "application/x-xml"},
		JSON:  {"application/json"},
		YAML:  {"application/x-yaml", "application/yaml", "text/yaml"},
		XHTML: {"application/xhtml+xml"},
		HTML:  {"text/html"},
		TXT:   {"text/plain"},
		CSV:   {"text/csv"},
	}
}

// Registry resolves short media type names to MIME strings. The zero value is
// not usable; create instances with NewRegistry.
//
// Reads are safe for concurrent use. Register is also safe, but is intended
// for startup: negotiation snapshots registry contents once per decorated
// handler, so late registrations do not affect handlers already wired.
type Registry struct {
	mu    sync.RWMutex
	types map[string][]string
}

// NewRegistry creates a registry seeded with the built-in name table.
func NewRegistry() *Registry {
	return &Registry{types: builtin()}
}

// Register maps a short name to one or more MIME strings, replacing any
// previous registration for that name. The first MIME string becomes the
// canonical Content-Type for the name. Names and MIME strings are lowercased.
func (r *Registry) Register(name string, mimeTypes ...string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.ContainsAny(name, "/; ") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if len(mimeTypes) == 0 {
		return fmt.Errorf("%w: no mime types for %q", ErrInvalidMimeType, name)
	}

	normalized := make([]string, len(mimeTypes))
	for i, mt := range mimeTypes {
		mt = strings.ToLower(strings.TrimSpace(mt))
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok || typ == "" || subtype == "" || strings.ContainsAny(mt, "; ") {
			return fmt.Errorf("%w: %q", ErrInvalidMimeType, mt)
		}
		normalized[i] = mt
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = normalized
	return nil
}

// MimeTypes returns the MIME strings registered for the name, canonical first.
func (r *Registry) MimeTypes(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mts, ok := r.types[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return slices.Clone(mts), nil
}

// Canonical returns the MIME string used for the Content-Type header when the
// name is selected.
func (r *Registry) Canonical(name string) (string, error) {
	mts, err := r.MimeTypes(name)
	if err != nil {
		return "", err
	}
	return mts[0], nil
}

// Has reports whether the name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[strings.ToLower(name)]
	return ok
}

// Names returns all registered short names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	return defaultRegistry
}

// Register maps a short name to MIME strings in the default registry.
func Register(name string, mimeTypes ...string) error {
	return defaultRegistry.Register(name, mimeTypes...)
}

// MimeTypes returns the MIME strings for the name from the default registry.
func MimeTypes(name string) ([]string, error) {
	return defaultRegistry.MimeTypes(name)
}

// Canonical returns the canonical MIME string for the name from the default
// registry.
func Canonical(name string) (string, error) {
	return defaultRegistry.Canonical(name)
}

// Has reports whether the name is registered in the default registry.
func Has(name string) bool {
	return defaultRegistry.Has(name)
}
