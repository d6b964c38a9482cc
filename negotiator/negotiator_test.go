package negotiator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mimerender/negotiator"
)

func testCandidates() []negotiator.Candidate {
	return []negotiator.Candidate{
		{Name: "html", MimeTypes: []string{"text/html"}},
		{Name: "json", MimeTypes: []string{"application/json"}},
		{Name: "xml", MimeTypes: []string{"application/xml", "text/xml", "application/x-xml"}},
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		candidates  []negotiator.Candidate
		defaultName string
		wantErr     error
	}{
		{
			name:        "no_candidates",
			candidates:  nil,
			defaultName: "html",
			wantErr:     negotiator.ErrNoCandidates,
		},
		{
			name:        "unknown_default",
			candidates:  testCandidates(),
			defaultName: "yaml",
			wantErr:     negotiator.ErrUnknownDefault,
		},
		{
			name: "empty_candidate_name",
			candidates: []negotiator.Candidate{
				{Name: "html", MimeTypes: []string{"text/html"}},
				{Name: "", MimeTypes: []string{"text/plain"}},
			},
			defaultName: "html",
			wantErr:     negotiator.ErrInvalidCandidate,
		},
		{
			name: "candidate_without_mime_types",
			candidates: []negotiator.Candidate{
				{Name: "html", MimeTypes: []string{"text/html"}},
				{Name: "json"},
			},
			defaultName: "html",
			wantErr:     negotiator.ErrInvalidCandidate,
		},
		{
			name: "unparsable_mime_type",
			candidates: []negotiator.Candidate{
				{Name: "html", MimeTypes: []string{"html"}},
			},
			defaultName: "html",
			wantErr:     negotiator.ErrInvalidCandidate,
		},
		{
			name: "duplicate_mime_type",
			candidates: []negotiator.Candidate{
				{Name: "html", MimeTypes: []string{"text/html"}},
				{Name: "web", MimeTypes: []string{"text/html"}},
			},
			defaultName: "html",
			wantErr:     negotiator.ErrDuplicateMimeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := negotiator.New(tt.candidates, tt.defaultName)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	n, err := negotiator.New(testCandidates(), "html")
	require.NoError(t, err)
	require.Equal(t, "html", n.Default())

	tests := []struct {
		name       string
		header     string
		want       string
		acceptable bool
	}{
		{
			name:       "exact_match",
			header:     "application/json",
			want:       "json",
			acceptable: true,
		},
		{
			name:       "empty_header_selects_default",
			header:     "",
			want:       "html",
			acceptable: true,
		},
		{
			name:       "whitespace_header_selects_default",
			header:     "   ",
			want:       "html",
			acceptable: true,
		},
		{
			name:       "full_wildcard_selects_default",
			header:     "*/*",
			want:       "html",
			acceptable: true,
		},
		{
			name:       "malformed_header_selects_default",
			header:     "gibberish",
			want:       "html",
			acceptable: true,
		},
		{
			name:       "alias_selects_owner",
			header:     "text/xml",
			want:       "xml",
			acceptable: true,
		},
		{
			name:       "quality_weights_honored",
			header:     "text/html;q=0.5, application/json",
			want:       "json",
			acceptable: true,
		},
		{
			name:       "explicit_zero_quality_prefers_other",
			header:     "text/html;q=0, application/json",
			want:       "json",
			acceptable: true,
		},
		{
			name:       "no_acceptable_match_reports_false",
			header:     "application/pdf",
			want:       "html",
			acceptable: false,
		},
		{
			name:       "subtype_wildcard_picks_first_offered",
			header:     "application/*",
			want:       "json",
			acceptable: true,
		},
		{
			name:       "exact_beats_wildcard",
			header:     "application/xml;q=0.9, */*;q=0.1",
			want:       "xml",
			acceptable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, acceptable := n.Negotiate(tt.header)
			assert.Equal(t, tt.want, name)
			assert.Equal(t, tt.acceptable, acceptable)

			assert.Equal(t, tt.want, n.Best(tt.header))
		})
	}
}

func TestNegotiateDefaultOrdering(t *testing.T) {
	t.Parallel()

	// The default wins wildcard ties regardless of its position in the
	// candidate list.
	n, err := negotiator.New(testCandidates(), "json")
	require.NoError(t, err)

	name, acceptable := n.Negotiate("*/*")
	assert.Equal(t, "json", name)
	assert.True(t, acceptable)
}
