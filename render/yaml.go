package render

import (
	"context"

	"gopkg.in/yaml.v3"
)

// YAML renders the payload with gopkg.in/yaml.v3.
func YAML() Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		return yaml.Marshal(v)
	}
}
