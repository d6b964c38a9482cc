package mimerender

import (
	"context"

	"golang.org/x/text/language"
)

// Selection describes the outcome of content negotiation for one request.
type Selection struct {
	// Name is the selected short name, e.g. "json".
	Name string

	// ContentType is the Content-Type header value the response will carry:
	// the canonical MIME string for Name plus the configured charset, if any.
	ContentType string

	// Language is the matched tag when WithLanguages is configured,
	// language.Und otherwise.
	Language language.Tag
}

type selectionKey struct{}

// withSelection stores the selection in the context for the handler and the
// renderer.
func withSelection(ctx context.Context, sel Selection) context.Context {
	return context.WithValue(ctx, selectionKey{}, sel)
}

// FromContext returns the Selection for the current request. It is available
// inside handlers wrapped by Wrap and inside renderers; the boolean is false
// when no negotiation has run on this context.
func FromContext(ctx context.Context) (Selection, bool) {
	sel, ok := ctx.Value(selectionKey{}).(Selection)
	return sel, ok
}
