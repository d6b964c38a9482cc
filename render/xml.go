package render

import (
	"context"
	"encoding/xml"
)

// XML renders the payload with encoding/xml. Map payloads are not supported
// by encoding/xml; use struct types or a custom Renderer.
func XML() Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		return xml.Marshal(v)
	}
}

// XMLIndent renders the payload as indented XML preceded by the standard
// procinst header.
func XMLIndent(prefix, indent string) Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		b, err := xml.MarshalIndent(v, prefix, indent)
		if err != nil {
			return nil, err
		}
		return append([]byte(xml.Header), b...), nil
	}
}
