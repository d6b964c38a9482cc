package mimerender

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/mimerender/mimetype"
	"github.com/dmitrymomot/mimerender/negotiator"
	"github.com/dmitrymomot/mimerender/render"
)

// Handler is the application function wrapped by Wrap. The returned value is
// the payload for the negotiated renderer; wrap it in Result or implement
// StatusCoder/Headerer to control status and extra headers. Returned errors
// go through the error mapping table.
type Handler func(r *http.Request) (any, error)

// ErrorHandler handles errors no mapping covers. Wrap calls it as the last
// resort.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// NotAcceptableFunc builds the 406 response for a well-formed Accept header
// that rules out every candidate. supported lists the negotiable MIME types.
type NotAcceptableFunc func(r *http.Request, supported []string) (contentType string, body []byte)

// OverrideFunc extracts a short-name override from the request. An empty
// string means no override.
type OverrideFunc func(r *http.Request) string

// Response is the framework-neutral product of negotiation and rendering.
// Adapters for frameworks that do not speak http.Handler consume it directly:
// apply Header, write Status, write Body.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Write emits the response onto w. Vary values merge with whatever earlier
// middleware already set; other headers replace same-named values.
func (resp *Response) Write(w http.ResponseWriter) error {
	for key, vals := range resp.Header {
		if http.CanonicalHeaderKey(key) == "Vary" {
			mergeVary(w.Header(), vals...)
			continue
		}
		w.Header()[key] = vals
	}
	w.WriteHeader(resp.Status)
	_, err := w.Write(resp.Body)
	return err
}

// MimeRender selects a renderer per request from the Accept header (or an
// explicit override) and turns handler payloads into ready-to-write
// responses. Immutable after New and safe for concurrent use.
type MimeRender struct {
	registry     *mimetype.Registry
	names        []string
	renderers    map[string]render.Renderer
	errNames     []string
	errRenderers map[string]render.Renderer
	mappings     []ErrorMapping

	defaultName string
	charset     string
	vary        bool

	queryParam string
	pathParam  string
	override   OverrideFunc

	notAcceptable NotAcceptableFunc
	errorHandler  ErrorHandler
	logger        *slog.Logger
	languages     *negotiator.Language

	neg          *negotiator.Negotiator
	errNeg       *negotiator.Negotiator
	contentTypes map[string]string
	supported    []string
}

// New builds a MimeRender from the options. At least one renderer is
// required; every registered name must be known to the registry and the
// default must have a renderer.
func New(opts ...Option) (*MimeRender, error) {
	m := &MimeRender{
		registry:     mimetype.Default(),
		renderers:    make(map[string]render.Renderer),
		errRenderers: make(map[string]render.Renderer),
		vary:         true,
		errorHandler: DefaultErrorHandler,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(m.names) == 0 {
		return nil, ErrNoRenderers
	}
	if m.defaultName == "" {
		m.defaultName = m.names[0]
	}
	if _, ok := m.renderers[m.defaultName]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultNotRegistered, m.defaultName)
	}
	if len(m.mappings) > 0 && len(m.errNames) == 0 {
		return nil, ErrNoErrorRenderers
	}

	candidates, supported, err := m.resolve(m.names)
	if err != nil {
		return nil, err
	}
	m.supported = supported
	if m.neg, err = negotiator.New(candidates, m.defaultName); err != nil {
		return nil, err
	}

	if len(m.errNames) > 0 {
		errDefault := m.defaultName
		if _, ok := m.errRenderers[errDefault]; !ok {
			errDefault = m.errNames[0]
		}
		errCandidates, _, err := m.resolve(m.errNames)
		if err != nil {
			return nil, err
		}
		if m.errNeg, err = negotiator.New(errCandidates, errDefault); err != nil {
			return nil, err
		}
	}

	m.contentTypes = make(map[string]string, len(m.names)+len(m.errNames))
	for _, name := range slices.Concat(m.names, m.errNames) {
		if _, ok := m.contentTypes[name]; ok {
			continue
		}
		ct, err := m.registry.Canonical(name)
		if err != nil {
			return nil, err
		}
		if m.charset != "" {
			ct += "; charset=" + m.charset
		}
		m.contentTypes[name] = ct
	}

	return m, nil
}

// resolve maps short names to negotiation candidates through the registry.
func (m *MimeRender) resolve(names []string) ([]negotiator.Candidate, []string, error) {
	candidates := make([]negotiator.Candidate, 0, len(names))
	var supported []string
	for _, name := range names {
		mts, err := m.registry.MimeTypes(name)
		if err != nil {
			return nil, nil, err
		}
		candidates = append(candidates, negotiator.Candidate{Name: name, MimeTypes: mts})
		supported = append(supported, mts...)
	}
	return candidates, supported, nil
}

// Wrap adapts a Handler into an http.HandlerFunc: negotiate, run the handler,
// render, write. Handler errors go through the mapping table; unmapped ones
// reach the configured ErrorHandler. Panics are not recovered.
func (m *MimeRender) Wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel, acceptable := m.negotiate(r)
		if !acceptable && m.notAcceptable != nil {
			if err := m.writeNotAcceptable(w, r); err != nil {
				m.logger.LogAttrs(r.Context(), slog.LevelError, "write not acceptable response",
					slog.Any("error", err))
			}
			return
		}
		m.logger.LogAttrs(r.Context(), slog.LevelDebug, "media type negotiated",
			slog.String("name", sel.Name),
			slog.String("content_type", sel.ContentType))

		r = r.WithContext(withSelection(r.Context(), sel))

		v, err := h(r)
		if err != nil {
			m.handleError(w, r, err)
			return
		}

		resp, err := m.render(r, sel, v)
		if err != nil {
			m.handleError(w, r, err)
			return
		}
		if err := resp.Write(w); err != nil {
			m.logger.LogAttrs(r.Context(), slog.LevelError, "write response",
				slog.String("name", sel.Name),
				slog.Any("error", err))
		}
	}
}

// Respond negotiates, renders, and writes v in one call, for callers that are
// not using Wrap. Render failures leave w untouched and are returned.
func (m *MimeRender) Respond(w http.ResponseWriter, r *http.Request, v any) error {
	sel, acceptable := m.negotiate(r)
	if !acceptable && m.notAcceptable != nil {
		return m.writeNotAcceptable(w, r)
	}
	resp, err := m.render(r, sel, v)
	if err != nil {
		return err
	}
	return resp.Write(w)
}

// RespondError renders and writes a mapped error. Unmapped errors are
// returned unchanged so the caller keeps control of them.
func (m *MimeRender) RespondError(w http.ResponseWriter, r *http.Request, err error) error {
	resp, rerr := m.RenderError(r, err)
	if rerr != nil {
		return rerr
	}
	return resp.Write(w)
}

// Render negotiates and renders v into a framework-neutral Response without
// writing anything.
func (m *MimeRender) Render(r *http.Request, v any) (*Response, error) {
	sel, _ := m.negotiate(r)
	return m.render(r, sel, v)
}

// RenderError builds the response for a mapped error: status from the first
// matching mapping (or the error's own StatusCode), body from the error
// renderer negotiated for the request. Unmapped errors, and any error when no
// error renderer is registered, are returned unchanged.
func (m *MimeRender) RenderError(r *http.Request, err error) (*Response, error) {
	if m.errNeg == nil {
		return nil, err
	}
	status, ok := m.mapError(err)
	if !ok {
		return nil, err
	}

	sel := m.negotiateError(r)
	body, rerr := m.errRenderers[sel.Name](withSelection(r.Context(), sel), err)
	if rerr != nil {
		return nil, fmt.Errorf("render %s error response: %w", sel.Name, rerr)
	}

	header := http.Header{}
	header.Set("Content-Type", sel.ContentType)
	if m.languages != nil {
		header.Set("Content-Language", sel.Language.String())
	}
	if m.vary {
		mergeVary(header, m.varyFields()...)
	}
	return &Response{Status: status, Header: header, Body: body}, nil
}

// render serializes the payload with the selected renderer and assembles the
// response headers. Nothing is written here, so a failing renderer cannot
// leave a half-written response behind.
func (m *MimeRender) render(r *http.Request, sel Selection, v any) (*Response, error) {
	payload := v
	status := http.StatusOK
	header := http.Header{}

	if sc, ok := v.(StatusCoder); ok {
		if s := sc.StatusCode(); s >= 100 && s <= 599 {
			status = s
		}
	}
	if hd, ok := v.(Headerer); ok {
		for key, vals := range hd.Headers() {
			for _, val := range vals {
				header.Add(key, val)
			}
		}
	}
	if res, ok := v.(Result); ok {
		payload = res.Value
	}

	body, err := m.renderers[sel.Name](withSelection(r.Context(), sel), payload)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", sel.Name, err)
	}

	header.Set("Content-Type", sel.ContentType)
	if m.languages != nil {
		header.Set("Content-Language", sel.Language.String())
	}
	if m.vary {
		mergeVary(header, m.varyFields()...)
	}
	return &Response{Status: status, Header: header, Body: body}, nil
}

// negotiate resolves the selection for the request: override first, then the
// Accept header. The boolean is false only when a well-formed header rules
// out every candidate.
func (m *MimeRender) negotiate(r *http.Request) (Selection, bool) {
	name := m.overrideName(r)
	acceptable := true
	if _, ok := m.renderers[name]; !ok {
		name, acceptable = m.neg.Negotiate(r.Header.Get("Accept"))
	}

	sel := Selection{Name: name, ContentType: m.contentTypes[name]}
	if m.languages != nil {
		sel.Language = m.languages.Match(r.Header.Get("Accept-Language"))
	}
	return sel, acceptable
}

// negotiateError is negotiate against the error renderer set.
func (m *MimeRender) negotiateError(r *http.Request) Selection {
	name := m.overrideName(r)
	if _, ok := m.errRenderers[name]; !ok {
		name = m.errNeg.Best(r.Header.Get("Accept"))
	}

	sel := Selection{Name: name, ContentType: m.contentTypes[name]}
	if m.languages != nil {
		sel.Language = m.languages.Match(r.Header.Get("Accept-Language"))
	}
	return sel
}

// overrideName extracts the short-name override: custom extractor, then path
// value, then query parameter. Names are matched case-insensitively.
func (m *MimeRender) overrideName(r *http.Request) string {
	if m.override != nil {
		if name := m.override(r); name != "" {
			return strings.ToLower(name)
		}
	}
	if m.pathParam != "" {
		if name := r.PathValue(m.pathParam); name != "" {
			return strings.ToLower(name)
		}
	}
	if m.queryParam != "" {
		if name := r.URL.Query().Get(m.queryParam); name != "" {
			return strings.ToLower(name)
		}
	}
	return ""
}

// mapError resolves the response status for a handler error: the explicit
// mapping table in order, then the error's own StatusCode.
func (m *MimeRender) mapError(err error) (int, bool) {
	for _, em := range m.mappings {
		if errors.Is(err, em.Target) {
			return em.Status, true
		}
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		if s := sc.StatusCode(); s >= 100 && s <= 599 {
			return s, true
		}
	}
	return 0, false
}

// handleError routes a handler error to the mapped rendering, falling back to
// the configured ErrorHandler for everything else.
func (m *MimeRender) handleError(w http.ResponseWriter, r *http.Request, err error) {
	resp, rerr := m.RenderError(r, err)
	if rerr != nil {
		m.logger.LogAttrs(r.Context(), slog.LevelDebug, "unmapped handler error",
			slog.Any("error", rerr))
		m.errorHandler(w, r, rerr)
		return
	}
	if werr := resp.Write(w); werr != nil {
		m.logger.LogAttrs(r.Context(), slog.LevelError, "write error response",
			slog.Any("error", werr))
	}
}

// writeNotAcceptable emits the 406 built by the callback.
func (m *MimeRender) writeNotAcceptable(w http.ResponseWriter, r *http.Request) error {
	ct, body := m.notAcceptable(r, slices.Clone(m.supported))
	if ct == "" {
		ct = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	if m.vary {
		mergeVary(w.Header(), m.varyFields()...)
	}
	w.WriteHeader(http.StatusNotAcceptable)
	_, err := w.Write(body)
	return err
}

// varyFields lists the request headers negotiation depends on.
func (m *MimeRender) varyFields() []string {
	if m.languages != nil {
		return []string{"Accept", "Accept-Language"}
	}
	return []string{"Accept"}
}

// DefaultErrorHandler is Wrap's fallback for unmapped errors: plain-text
// http.Error with the status from StatusCoder when the error carries one,
// 500 otherwise.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var sc StatusCoder
	if errors.As(err, &sc) {
		if s := sc.StatusCode(); s >= 100 && s <= 599 {
			status = s
		}
	}
	http.Error(w, err.Error(), status)
}
