// Package render provides the Renderer type consumed by mimerender and stock
// implementations for common media types: JSON, XML, YAML, plain text, CSV,
// html/template, and templ components.
//
// A Renderer serializes a handler payload into the response body for one
// negotiated media type:
//
//	type Renderer func(ctx context.Context, v any) ([]byte, error)
//
// Stock renderers are conveniences; any function with this signature can be
// registered. The context is the request context, so renderers can reach
// request-scoped values (deadlines, locale, the negotiated selection).
//
// # Usage
//
//	m, err := mimerender.New(
//		mimerender.WithRenderer("json", render.JSON()),
//		mimerender.WithRenderer("xml", render.XML()),
//		mimerender.WithRenderer("txt", render.Text()),
//	)
//
// Renderers must not retain the payload after returning.
package render
