// Package web holds the server-rendered views.
package web

import (
	"embed"
	"html"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FuncMap is shared by every view.
//
// Stored names are already entity-escaped by the form pipeline; unescape
// hands the raw text back to html/template so it is encoded exactly once.
var FuncMap = template.FuncMap{
	"unescape": html.UnescapeString,
}

// Templates parses all views. Each file defines one named template
// (publisher_list, publisher_detail, publisher_form, publisher_delete, error).
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(templatesFS, "templates/*.html")
}
