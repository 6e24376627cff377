package openapi

import (
	"fmt"
	"html"
	"net/http"
	"strings"
)

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRapiDoc
	DocsRedoc
)

// ParseDocsUI maps a UI name ("swagger", "rapidoc", "redoc") to a DocsUI.
// Unknown names fall back to DocsSwaggerUI.
func ParseDocsUI(name string) DocsUI {
	switch strings.ToLower(name) {
	case "rapidoc":
		return DocsRapiDoc
	case "redoc":
		return DocsRedoc
	default:
		return DocsSwaggerUI
	}
}

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// UI selects the interactive docs UI (default: DocsSwaggerUI).
	UI DocsUI

	// Title overrides the HTML page title (default: document info.title).
	Title string

	// Filename is the base name of the document endpoints (default: "openapi"),
	// served as <basePath>/<Filename>.json and <basePath>/<Filename>.yaml.
	Filename string

	// DisableDocs disables the interactive HTML docs UI endpoint.
	DisableDocs bool
}

func (cfg HandleConfig) filename() string {
	if cfg.Filename == "" {
		return "openapi"
	}
	return cfg.Filename
}

// Handle registers the JSON, YAML and docs endpoints for doc on mux under
// basePath:
//
//	<basePath>/<filename>.json  - document as JSON
//	<basePath>/<filename>.yaml  - document as YAML
//	<basePath>/docs             - interactive HTML docs (unless DisableDocs)
//
// Both encodings are produced up front, so a document that cannot be
// serialized is reported here instead of on first request.
func Handle(mux *http.ServeMux, basePath string, doc *Document, cfg *HandleConfig) error {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	jsonData, err := MarshalJSON(doc)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	yamlData, err := MarshalYAML(doc)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	jsonPath := basePath + "/" + cfg.filename() + ".json"
	yamlPath := basePath + "/" + cfg.filename() + ".yaml"

	mux.HandleFunc("GET "+jsonPath, serveBytes("application/json", jsonData))
	mux.HandleFunc("GET "+yamlPath, serveBytes("application/x-yaml", yamlData))

	if !cfg.DisableDocs {
		title := cfg.Title
		if title == "" {
			title = doc.Info.Title
		}

		var page string
		switch cfg.UI {
		case DocsRapiDoc:
			page = rapidocTemplate(title, jsonPath)
		case DocsRedoc:
			page = redocTemplate(title, jsonPath)
		default:
			page = swaggerUITemplate(title, jsonPath)
		}
		mux.HandleFunc("GET "+basePath+"/docs", serveBytes("text/html; charset=utf-8", []byte(page)))
	}

	return nil
}

func serveBytes(contentType string, data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func swaggerUITemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});
</script>
</body>
</html>`, html.EscapeString(title), specPath)
}

func rapidocTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
<rapi-doc spec-url=%q></rapi-doc>
</body>
</html>`, html.EscapeString(title), specPath)
}

func redocTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<redoc spec-url=%q></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`, html.EscapeString(title), specPath)
}
