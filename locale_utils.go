package colocale

import "strings"

// NormalizeLocale normalizes a locale identifier by trimming whitespace and
// replacing underscores with hyphens ("pt_BR" -> "pt-BR"). Loaders and CLIs
// normalize once at the boundary; the engine compares identifiers verbatim.
func NormalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// NormalizeLocales normalizes a list of locale identifiers, dropping empty
// entries and duplicates while preserving declaration order. Order matters:
// the first locale is the cross-locale reference.
func NormalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := NormalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}

// normalizeLocale keeps package-internal call sites terse.
func normalizeLocale(locale string) string {
	return NormalizeLocale(locale)
}
