package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates. Each file is a complete page
// named by its base filename.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
