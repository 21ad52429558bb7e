package game

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for kind response templates.
var templateFuncs = sprig.TxtFuncMap()

// TemplateData is the view of an entity exposed to response templates.
type TemplateData struct {
	Name        string
	Synonyms    string
	Description string
	Kind        string
}

// TemplateDataFrom builds the template view of e.
func TemplateDataFrom(e *Entity) *TemplateData {
	td := &TemplateData{
		Name:        e.Name,
		Synonyms:    e.Synonyms,
		Description: e.Description,
	}
	if e.Kind != nil {
		td.Kind = e.Kind.Name()
	}
	return td
}

// ExpandTemplate expands a template string using the provided data.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
