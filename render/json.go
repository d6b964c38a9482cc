package render

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSON renders the payload with encoding/json. A nil payload encodes as
// "null".
func JSON() Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		return json.Marshal(v)
	}
}

// JSONIndent renders the payload as indented JSON.
func JSONIndent(prefix, indent string) Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		return json.MarshalIndent(v, prefix, indent)
	}
}

// JSONError renders an error payload as {"error": "<message>"}. Payloads that
// are not errors are formatted with %v. Intended for WithErrorRenderer.
func JSONError() Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		msg := fmt.Sprintf("%v", v)
		if err, ok := v.(error); ok {
			msg = err.Error()
		}
		return json.Marshal(map[string]string{"error": msg})
	}
}
