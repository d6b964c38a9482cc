package render

import (
	"bytes"
	"context"
	"errors"
	"html/template"
)

// Template renders the payload through an html/template. An empty name
// executes the template itself; otherwise the named template from the
// collection is executed (ParseFiles, ParseGlob). Output is buffered, so a
// failing template produces no partial body.
func Template(tmpl *template.Template, name string) Renderer {
	return func(_ context.Context, v any) ([]byte, error) {
		if tmpl == nil {
			return nil, errors.New("nil template")
		}

		var buf bytes.Buffer
		var err error
		if name != "" {
			err = tmpl.ExecuteTemplate(&buf, name, v)
		} else {
			err = tmpl.Execute(&buf, v)
		}
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
