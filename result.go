package mimerender

import "net/http"

// StatusCoder lets payloads and errors carry their response status. Errors
// implementing it are mapped implicitly, after the explicit mapping table.
type StatusCoder interface {
	StatusCode() int
}

// Headerer lets payloads attach extra response headers.
type Headerer interface {
	Headers() http.Header
}

// Result wraps a payload with a response status and extra headers for
// requests that need more than the default 200 OK. The renderer receives
// Value; Status and Header go to the response unchanged.
type Result struct {
	Value  any
	Status int
	Header http.Header
}

// WithStatus wraps v so the response is written with the given status.
func WithStatus(v any, status int) Result {
	return Result{Value: v, Status: status}
}

// WithHeader returns a copy of the result with the header field set. The
// original is not modified.
func (res Result) WithHeader(key, value string) Result {
	h := res.Header.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Set(key, value)
	res.Header = h
	return res
}

// StatusCode implements StatusCoder. Zero means unset.
func (res Result) StatusCode() int {
	return res.Status
}

// Headers implements Headerer.
func (res Result) Headers() http.Header {
	return res.Header
}
