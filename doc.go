// Package mimerender selects how an HTTP response is serialized based on the
// request's Accept header. Handlers return plain data; mimerender negotiates
// a media type among the registered renderers, serializes the payload, and
// writes Content-Type, Vary, and status. One handler serves JSON to API
// clients, HTML to browsers, and YAML to tooling, without branching on
// headers itself.
//
// # Quick Start
//
//	m, err := mimerender.New(
//		mimerender.WithRenderer("html", render.Template(tmpl, "user")),
//		mimerender.WithRenderer("json", render.JSON()),
//		mimerender.WithRenderer("xml", render.XML()),
//		mimerender.WithDefault("html"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /users/{id}", m.Wrap(func(r *http.Request) (any, error) {
//		u, err := store.Find(r.Context(), r.PathValue("id"))
//		if err != nil {
//			return nil, err
//		}
//		return u, nil
//	}))
//
// A browser (Accept: text/html) receives the rendered template, curl with
// Accept: application/json receives JSON, and clients with no or malformed
// Accept headers receive the default. Short names resolve through the
// mimetype registry; mimetype.Register adds custom ones.
//
// # Status Codes and Headers
//
// Handlers control the response beyond the body by wrapping the payload:
//
//	return mimerender.WithStatus(u, http.StatusCreated).
//		WithHeader("Location", "/users/"+u.ID), nil
//
// Any payload implementing StatusCoder or Headerer gets the same treatment.
//
// # Error Mapping
//
// Handler errors resolve through an ordered mapping table and render with the
// error renderers, keeping the negotiated media type on failures:
//
//	m, err := mimerender.New(
//		mimerender.WithRenderer("json", render.JSON()),
//		mimerender.WithErrorRenderer("json", render.JSONError()),
//		mimerender.WithErrorMapping(store.ErrNotFound, http.StatusNotFound),
//		mimerender.WithErrorMapping(store.ErrConflict, http.StatusConflict),
//	)
//
// Unmapped errors propagate to the ErrorHandler (plain 500 by default), so
// unexpected failures are never silently rendered as API payloads.
//
// # Beyond net/http
//
// Respond and RespondError drive negotiation imperatively inside existing
// handlers, and Render/RenderError produce a framework-neutral *Response for
// adapters to transports that do not speak http.Handler.
package mimerender
