package mailto

import (
	"embed"
	"text/template"
)

//go:embed templates/*.txt
var templateFS embed.FS

// loadTemplates mailto template'lerini yükler
func loadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.txt")
}
