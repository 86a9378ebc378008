package colocale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches a {{name}} span enclosing a bare identifier.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)

// Substitute replaces every {{name}} occurrence in template whose name has
// an entry in values, coercing the value to its string form. Placeholders
// without a matching entry are left verbatim: substitution is partial and
// silent by design, it never fails.
func Substitute(template string, values Values) string {
	if template == "" || len(values) == 0 {
		return template
	}

	result := template
	for _, name := range templatePlaceholders(template) {
		value, ok := values[name]
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, "{{"+name+"}}", stringify(value))
	}
	return result
}

// SubstituteStrict behaves like Substitute but additionally reports every
// template placeholder missing from values via a single
// *MissingPlaceholdersError. The incomplete string is still returned so
// callers can choose to render it anyway.
func SubstituteStrict(template string, values Values) (string, error) {
	result := Substitute(template, values)

	var missing []string
	for _, name := range templatePlaceholders(template) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return result, &MissingPlaceholdersError{Template: template, Names: missing}
	}
	return result, nil
}

// templatePlaceholders returns the placeholder names found in template, in
// first-occurrence order without duplicates.
func templatePlaceholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// stringify coerces a placeholder value to its string form. Numbers render
// via their default decimal representation.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
