package mimerender

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/mimerender/mimetype"
	"github.com/dmitrymomot/mimerender/negotiator"
	"github.com/dmitrymomot/mimerender/render"
)

// Option configures a MimeRender during construction.
type Option func(*MimeRender) error

// WithRenderer registers a renderer under a short name. The name must be
// known to the registry when New runs. Registration order matters: the first
// renderer becomes the default unless WithDefault says otherwise, and earlier
// names win wildcard ties.
func WithRenderer(name string, r render.Renderer) Option {
	return func(m *MimeRender) error {
		name = strings.ToLower(name)
		if name == "" {
			return fmt.Errorf("renderer name cannot be empty")
		}
		if r == nil {
			return fmt.Errorf("renderer %q cannot be nil", name)
		}
		if _, exists := m.renderers[name]; exists {
			return fmt.Errorf("renderer %q already registered", name)
		}
		m.names = append(m.names, name)
		m.renderers[name] = r
		return nil
	}
}

// WithDefault sets the short name selected when the Accept header is missing,
// malformed, wildcard, or unmatchable. Defaults to the first registered
// renderer.
func WithDefault(name string) Option {
	return func(m *MimeRender) error {
		name = strings.ToLower(name)
		if name == "" {
			return fmt.Errorf("default name cannot be empty")
		}
		m.defaultName = name
		return nil
	}
}

// WithCharset appends "; charset=<cs>" to every Content-Type written.
func WithCharset(cs string) Option {
	return func(m *MimeRender) error {
		if cs == "" {
			return fmt.Errorf("charset cannot be empty")
		}
		m.charset = cs
		return nil
	}
}

// WithoutVary disables merging "Accept" into the response Vary header. Only
// for responses that are never cached by media type.
func WithoutVary() Option {
	return func(m *MimeRender) error {
		m.vary = false
		return nil
	}
}

// WithQueryOverride selects the short name from a query parameter, e.g.
// "format" for /users?format=json, bypassing header negotiation. Unknown
// names fall back to the Accept header.
func WithQueryOverride(param string) Option {
	return func(m *MimeRender) error {
		if param == "" {
			return fmt.Errorf("query override parameter cannot be empty")
		}
		m.queryParam = param
		return nil
	}
}

// WithPathOverride selects the short name from a route path value, e.g.
// "ext" for GET /users/{id}.{ext} style routes. The value is read with
// http.Request.PathValue, so it works with any router that populates it.
func WithPathOverride(param string) Option {
	return func(m *MimeRender) error {
		if param == "" {
			return fmt.Errorf("path override parameter cannot be empty")
		}
		m.pathParam = param
		return nil
	}
}

// WithOverrideFunc selects the short name with a custom extractor. An empty
// return means no override. Checked before path and query overrides.
func WithOverrideFunc(fn OverrideFunc) Option {
	return func(m *MimeRender) error {
		if fn == nil {
			return fmt.Errorf("override func cannot be nil")
		}
		m.override = fn
		return nil
	}
}

// WithNotAcceptable turns a well-formed but unmatchable Accept header into a
// 406 response with the callback's content type and body, instead of falling
// back to the default renderer. The callback receives every negotiable MIME
// type.
func WithNotAcceptable(fn NotAcceptableFunc) Option {
	return func(m *MimeRender) error {
		if fn == nil {
			return fmt.Errorf("not acceptable callback cannot be nil")
		}
		m.notAcceptable = fn
		return nil
	}
}

// WithErrorRenderer registers a renderer used for mapped handler errors under
// a short name. The error renderer set negotiates independently from the
// success set; its default is the main default name when present here, the
// first registered error renderer otherwise.
func WithErrorRenderer(name string, r render.Renderer) Option {
	return func(m *MimeRender) error {
		name = strings.ToLower(name)
		if name == "" {
			return fmt.Errorf("error renderer name cannot be empty")
		}
		if r == nil {
			return fmt.Errorf("error renderer %q cannot be nil", name)
		}
		if _, exists := m.errRenderers[name]; exists {
			return fmt.Errorf("error renderer %q already registered", name)
		}
		m.errNames = append(m.errNames, name)
		m.errRenderers[name] = r
		return nil
	}
}

// WithErrorMapping maps handler errors matching target (via errors.Is) to a
// response status. Mappings are checked in registration order and the first
// match wins, so register specific errors before the ones they wrap.
func WithErrorMapping(target error, status int) Option {
	return func(m *MimeRender) error {
		if target == nil {
			return fmt.Errorf("%w: nil target", ErrInvalidMapping)
		}
		if status < 100 || status > 599 {
			return fmt.Errorf("%w: status %d", ErrInvalidMapping, status)
		}
		m.mappings = append(m.mappings, ErrorMapping{Target: target, Status: status})
		return nil
	}
}

// WithErrorHandler sets the fallback for unmapped handler errors in Wrap.
// The default responds with http.Error, honoring StatusCoder errors.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(m *MimeRender) error {
		if fn == nil {
			return fmt.Errorf("error handler cannot be nil")
		}
		m.errorHandler = fn
		return nil
	}
}

// WithLogger enables structured logging of negotiation outcomes (debug) and
// write failures (error). Logging is off by default.
func WithLogger(log *slog.Logger) Option {
	return func(m *MimeRender) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		m.logger = log
		return nil
	}
}

// WithRegistry resolves short names through a custom registry instead of
// mimetype.Default().
func WithRegistry(reg *mimetype.Registry) Option {
	return func(m *MimeRender) error {
		if reg == nil {
			return fmt.Errorf("registry cannot be nil")
		}
		m.registry = reg
		return nil
	}
}

// WithLanguages enables Accept-Language matching against the given tags, in
// preference order. The matched tag is exposed in the Selection and written
// as Content-Language; "Accept-Language" joins the Vary header.
func WithLanguages(tags ...language.Tag) Option {
	return func(m *MimeRender) error {
		lang, err := negotiator.NewLanguage(tags...)
		if err != nil {
			return err
		}
		m.languages = lang
		return nil
	}
}
