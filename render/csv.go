package render

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
)

// CSV renders tabular payloads with encoding/csv. Accepted payload shapes are
// [][]string (records) and []string (a single record); anything else returns
// ErrUnsupportedType.
func CSV() Renderer {
	return CSVComma(',')
}

// CSVComma is CSV with a custom field separator, e.g. '\t' or ';'.
func CSVComma(comma rune) Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		var records [][]string
		switch t := v.(type) {
		case [][]string:
			records = t
		case []string:
			records = [][]string{t}
		default:
			return nil, fmt.Errorf("%w: %T is not [][]string or []string", ErrUnsupportedType, v)
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		w.Comma = comma
		if err := w.WriteAll(records); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
