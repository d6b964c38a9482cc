package negotiator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elnormous/contenttype"
)

var (
	// ErrNoCandidates is returned by New when the candidate list is empty.
	ErrNoCandidates = errors.New("no candidates")

	// ErrUnknownDefault is returned by New when the default name does not
	// identify any candidate.
	ErrUnknownDefault = errors.New("default not among candidates")

	// ErrInvalidCandidate is returned by New for a candidate with an empty
	// name, no MIME types, or an unparsable MIME type.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrDuplicateMimeType is returned by New when two candidates claim the
	// same MIME type.
	ErrDuplicateMimeType = errors.New("duplicate mime type")
)

// Candidate pairs a short name with the MIME types it answers to. MIME types
// are matched against the Accept header in the order given.
type Candidate struct {
	Name      string
	MimeTypes []string
}

// Negotiator selects one candidate name per Accept header. The candidate set
// is validated once at construction; negotiation itself never fails.
type Negotiator struct {
	defaultName string
	available   []contenttype.MediaType
	names       map[string]string
}

// New builds a negotiator over the candidates. The default name must identify
// one of them. The default candidate's MIME types are offered first, which
// makes it the winner for wildcard ranges and empty headers.
func New(candidates []Candidate, defaultName string) (*Negotiator, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	ordered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Name == defaultName {
			ordered = append(ordered, c)
			break
		}
	}
	if len(ordered) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultName)
	}
	for _, c := range candidates {
		if c.Name != defaultName {
			ordered = append(ordered, c)
		}
	}

	n := &Negotiator{
		defaultName: defaultName,
		available:   make([]contenttype.MediaType, 0, len(ordered)),
		names:       make(map[string]string, len(ordered)),
	}
	for _, c := range ordered {
		if c.Name == "" || len(c.MimeTypes) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCandidate, c.Name)
		}
		for _, mt := range c.MimeTypes {
			parsed := contenttype.NewMediaType(mt)
			if parsed.Type == "" || parsed.Subtype == "" {
				return nil, fmt.Errorf("%w: %q has mime type %q", ErrInvalidCandidate, c.Name, mt)
			}
			key := parsed.Type + "/" + parsed.Subtype
			if owner, ok := n.names[key]; ok {
				return nil, fmt.Errorf("%w: %q claimed by %q and %q", ErrDuplicateMimeType, key, owner, c.Name)
			}
			n.names[key] = c.Name
			n.available = append(n.available, parsed)
		}
	}
	return n, nil
}

// Best returns the candidate name for the Accept header. Missing, malformed,
// and unmatchable headers select the default.
func (n *Negotiator) Best(header string) string {
	name, _ := n.Negotiate(header)
	return name
}

// Negotiate returns the candidate name for the Accept header, plus whether
// that selection is acceptable to the client. The flag is false only when the
// header is well formed and explicitly rules out every candidate; missing and
// malformed headers express no preference, so the default is acceptable.
func (n *Negotiator) Negotiate(header string) (string, bool) {
	if strings.TrimSpace(header) == "" {
		return n.defaultName, true
	}

	mt, _, err := contenttype.GetAcceptableMediaTypeFromHeader(header, n.available)
	if err != nil {
		if errors.Is(err, contenttype.ErrNoAcceptableTypeFound) {
			return n.defaultName, false
		}
		return n.defaultName, true
	}

	name, ok := n.names[mt.Type+"/"+mt.Subtype]
	if !ok {
		return n.defaultName, true
	}
	return name, true
}

// Default returns the name selected when negotiation falls back.
func (n *Negotiator) Default() string {
	return n.defaultName
}
