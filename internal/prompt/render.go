// Package prompt builds provider-agnostic generation prompts from named
// templates with {{variable}} placeholders.
package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// Render substitutes the supplied variables into the named template.
// Substitution is literal and non-recursive: every occurrence of
// {{name}} is replaced with the variable's value, and placeholders with no
// supplied variable are left verbatim. Callers are responsible for supplying
// everything the chosen template needs.
func Render(templateName string, variables map[string]string) (string, error) {
	tmpl, ok := templates[templateName]
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", templateName)
	}
	return substitute(tmpl, variables), nil
}

// Names returns the known template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func substitute(tmpl string, variables map[string]string) string {
	if len(variables) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(variables)*2)
	for name, value := range variables {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
