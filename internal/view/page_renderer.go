package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
)

// PageRenderer renders web pages through a set of templates
type PageRenderer struct {
	templates map[string]*template.Template
}

// Creates a page renderer with the given set:
//
//	The key is a template path
//	The value is a set of paths of templates with layouts
func NewPageRenderer(tmplMap map[string][]string) *PageRenderer {
	templates := make(map[string]*template.Template)

	for k, v := range tmplMap {
		t := template.Must(template.ParseFiles(v...))
		templates[k] = t
	}
	return &PageRenderer{templates: templates}
}

// Render executes the template with name "name" and writes it out with the
// given status code. The page is built in a buffer first so a template error
// never leaks half a page to the client.
func (pr *PageRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := pr.templates[name]
	if !ok {
		return fmt.Errorf("Template is missing{%s}", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
