package render

import (
	"context"
	"errors"
)

// Renderer serializes a handler payload into the response body for one
// negotiated media type. The context is the request context.
type Renderer func(ctx context.Context, v any) ([]byte, error)

// ErrUnsupportedType is returned by stock renderers that require a specific
// payload shape (CSV, templ components) when given anything else.
var ErrUnsupportedType = errors.New("unsupported payload type")
