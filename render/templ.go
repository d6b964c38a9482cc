package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// Templ renders the payload through a templ component constructor. The
// payload must be assignable to T.
//
//	mimerender.WithRenderer("html", render.Templ(views.UserCard))
//
// The component is rendered with the request context, so request-scoped
// values remain reachable inside the template.
func Templ[T any](component func(T) templ.Component) Renderer {
	return func(ctx context.Context, v any) ([]byte, error) {
		data, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not assignable to the component argument", ErrUnsupportedType, v)
		}

		var buf bytes.Buffer
		if err := component(data).Render(ctx, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// Component renders payloads that already are templ components. Handlers
// returning templ.Component pair with this renderer directly.
func Component() Renderer {
	return func(ctx context.Context, v any) ([]byte, error) {
		c, ok := v.(templ.Component)
		if !ok {
			return nil, fmt.Errorf("%w: %T does not implement templ.Component", ErrUnsupportedType, v)
		}

		var buf bytes.Buffer
		if err := c.Render(ctx, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
