package commands

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for message templates.
var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a message template using the provided data.
// Content and front-ends use this for player-aware text like greetings and
// dialogue ({{ .PlayerName }}).
func ExpandTemplate(tmplStr string, data any) (string, error) {
	// Quick check: if no template markers, return as-is
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

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
