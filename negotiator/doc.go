// Package negotiator selects the best media type candidate for an Accept
// header and the best language tag for an Accept-Language header.
//
// Negotiation is pure and deterministic: the same candidates, default name,
// and header always produce the same selection. Quality scoring and media
// range parsing follow RFC 9110 and are delegated to
// github.com/elnormous/contenttype; language matching is delegated to
// golang.org/x/text/language.
//
// # Usage
//
//	n, err := negotiator.New([]negotiator.Candidate{
//		{Name: "html", MimeTypes: []string{"text/html"}},
//		{Name: "json", MimeTypes: []string{"application/json"}},
//	}, "html")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	name := n.Best(r.Header.Get("Accept"))
//
// The default candidate wins for missing, malformed, wildcard, and
// unmatchable headers. Use Negotiate instead of Best when the caller needs to
// distinguish an unmatchable header (the 406 case) from a normal selection.
package negotiator
