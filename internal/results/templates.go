package results

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the template name used for the results page.
const PageTemplate = "results.html"

// Templates parses the embedded results page.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
