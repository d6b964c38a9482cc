package negotiator

import (
	"errors"
	"slices"

	"golang.org/x/text/language"
)

// ErrNoLanguages is returned by NewLanguage when no tags are given.
var ErrNoLanguages = errors.New("no language tags")

// maxAcceptLanguageLength caps header parsing; RFC 9110 sets no limit, but
// 4KB covers any legitimate header.
const maxAcceptLanguageLength = 4096

// Language matches Accept-Language headers against a fixed set of supported
// tags. The first tag is the fallback for missing, malformed, and unmatchable
// headers.
type Language struct {
	tags    []language.Tag
	matcher language.Matcher
}

// NewLanguage builds a matcher over the supported tags, in preference order.
func NewLanguage(tags ...language.Tag) (*Language, error) {
	if len(tags) == 0 {
		return nil, ErrNoLanguages
	}
	tags = slices.Clone(tags)
	return &Language{
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Match returns the supported tag best matching the Accept-Language header.
func (l *Language) Match(header string) language.Tag {
	if header == "" {
		return l.tags[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	preferred, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(preferred) == 0 {
		return l.tags[0]
	}

	// Match may synthesize a tag with extensions; index into the supported
	// set to report exactly what the caller registered.
	_, i, _ := l.matcher.Match(preferred...)
	return l.tags[i]
}

// Tags returns the supported tags in preference order.
func (l *Language) Tags() []language.Tag {
	return slices.Clone(l.tags)
}
