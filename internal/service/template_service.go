// internal/service/template_service.go
package service

import (
	"strings"
)

// RenderTemplate substitutes {key} placeholders. Empty values render as <unknown>.
func RenderTemplate(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		if strings.TrimSpace(v) == "" {
			v = "<unknown>"
		}
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
