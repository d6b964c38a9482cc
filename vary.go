package mimerender

import (
	"net/http"
	"strings"
)

// mergeVary folds field names into the Vary header in h: absent fields are
// appended, existing ones are kept once, and prior entries keep their order.
// Field comparison is case-insensitive; each input may itself be a
// comma-separated list.
func mergeVary(h http.Header, fields ...string) {
	var tokens []string
	seen := make(map[string]bool)

	collect := func(list string) {
		for _, tok := range strings.Split(list, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			key := strings.ToLower(tok)
			if seen[key] {
				continue
			}
			seen[key] = true
			tokens = append(tokens, tok)
		}
	}

	for _, line := range h.Values("Vary") {
		collect(line)
	}
	for _, f := range fields {
		collect(f)
	}

	if len(tokens) == 0 {
		return
	}
	h.Set("Vary", strings.Join(tokens, ", "))
}
