package negotiator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/mimerender/negotiator"
)

func TestNewLanguage(t *testing.T) {
	t.Parallel()

	_, err := negotiator.NewLanguage()
	assert.ErrorIs(t, err, negotiator.ErrNoLanguages)

	l, err := negotiator.NewLanguage(language.English, language.Polish)
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{language.English, language.Polish}, l.Tags())
}

func TestLanguageMatch(t *testing.T) {
	t.Parallel()

	l, err := negotiator.NewLanguage(language.English, language.Polish, language.German)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{
			name:   "empty_header_falls_back_to_first",
			header: "",
			want:   language.English,
		},
		{
			name:   "exact_match",
			header: "pl",
			want:   language.Polish,
		},
		{
			name:   "quality_ordering",
			header: "de;q=0.9, pl;q=1.0",
			want:   language.Polish,
		},
		{
			name:   "region_variant_matches_base",
			header: "en-US",
			want:   language.English,
		},
		{
			name:   "unsupported_falls_back_to_first",
			header: "fr",
			want:   language.English,
		},
		{
			name:   "malformed_falls_back_to_first",
			header: ";;;",
			want:   language.English,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, l.Match(tt.header))
		})
	}
}
