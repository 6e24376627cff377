package generator

import (
	"strings"

	"github.com/vitalvas/oasgen/routes"
)

// RecompilePath converts a route template into an OpenAPI path template.
// Parameter segments ("@id", ":id", "{id:int}") become "{id}", a leading
// slash is ensured, empty segments collapse, and a trailing slash on the
// template is kept. "/" recompiles to "/". Already normalized templates come
// back unchanged.
func RecompilePath(raw string) string {
	var b strings.Builder
	for _, segment := range strings.Split(raw, "/") {
		if segment == "" {
			continue
		}
		b.WriteByte('/')
		if name, ok := routes.ParamName(segment); ok {
			b.WriteString("{" + name + "}")
			continue
		}
		b.WriteString(segment)
	}

	if b.Len() == 0 {
		return "/"
	}
	if strings.HasSuffix(raw, "/") {
		b.WriteByte('/')
	}
	return b.String()
}
