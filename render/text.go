package render

import (
	"context"
	"fmt"
)

// Text renders the payload as plain text. Strings and byte slices pass
// through unchanged; errors render their message; fmt.Stringer is honored;
// everything else is formatted with %v.
func Text() Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		switch t := v.(type) {
		case nil:
			return nil, nil
		case string:
			return []byte(t), nil
		case []byte:
			return t, nil
		case error:
			return []byte(t.Error()), nil
		case fmt.Stringer:
			return []byte(t.String()), nil
		default:
			return fmt.Appendf(nil, "%v", v), nil
		}
	}
}
