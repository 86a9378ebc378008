package colocale

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"unicode"
)

// GenerateAccessors emits Go source declaring one Requirement per namespace
// of the given locale, mirroring the catalog shape so consumers can declare
// what they need against checked, generated constants instead of bare
// strings. Plural siblings collapse to their base name: requirements always
// declare base keys and the resolver discovers the family.
//
// The locale handed in should be the reference locale; cross-locale
// validation guarantees the other locales share its shape.
func GenerateAccessors(pkg string, locale LocaleMessages) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("colocale: generate: package name required")
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by colocale-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"github.com/Urotea/colocale\"\n\n")

	namespaces := make([]string, 0, len(locale))
	for namespace := range locale {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)

	for _, namespace := range namespaces {
		ident := exportedIdent(namespace)
		if ident == "" {
			return nil, fmt.Errorf("colocale: generate: namespace %q yields no Go identifier", namespace)
		}

		keys := baseKeys(locale[namespace])
		fmt.Fprintf(&buf, "// %sRequirement declares every key of the %q namespace.\n", ident, namespace)
		fmt.Fprintf(&buf, "var %sRequirement = colocale.NewRequirement(%q,\n", ident, namespace)
		for _, key := range keys {
			fmt.Fprintf(&buf, "\t%q,\n", key)
		}
		buf.WriteString(")\n\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("colocale: generate: format: %w", err)
	}
	return formatted, nil
}

// baseKeys returns the sorted base key names of a namespace, with plural
// siblings collapsed into their base name.
func baseKeys(entries Namespace) []string {
	seen := make(map[string]struct{}, len(entries))
	for key := range entries {
		if base, _, ok := parsePluralSuffix(key); ok {
			seen[base] = struct{}{}
			continue
		}
		seen[key] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// exportedIdent turns a namespace name into an exported Go identifier,
// title-casing segments split on non-alphanumeric characters.
func exportedIdent(name string) string {
	var builder strings.Builder
	upperNext := true

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if builder.Len() == 0 && unicode.IsDigit(r) {
			continue
		}
		if upperNext {
			builder.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		builder.WriteRune(r)
	}

	return builder.String()
}
