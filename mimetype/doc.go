// Package mimetype maps short media type names to the MIME strings they
// stand for. Short names are what callers register renderers under ("json",
// "xml", "html", ...); the registry resolves them to the full list of MIME
// types offered during negotiation and to the canonical Content-Type value
// written on responses.
//
// The package seeds a built-in table covering the common representation
// formats. Custom names are added with Register:
//
//	import "github.com/dmitrymomot/mimerender/mimetype"
//
//	// Make "png" negotiable before wiring any renderers.
//	if err := mimetype.Register("png", "image/png"); err != nil {
//		log.Fatal(err)
//	}
//
// The first MIME string registered for a name is its canonical form: it is
// the value used for the Content-Type header when that name is selected.
// The remaining entries are aliases that still match during negotiation
// ("text/xml" selects "xml", the response still says "application/xml").
//
// Most applications use the package-level functions, which operate on a
// process-wide default registry. Register custom names during startup,
// before requests are served. Libraries that must not touch process-wide
// state can carry their own *Registry instead.
package mimetype
