package colocale

import (
	"fmt"
	"sort"
)

// ValidateCrossLocale checks that every locale exposes the same key set per
// namespace, relative to a reference locale. The first entry of locales is
// the reference; callers control the order because Go maps do not. When
// locales is empty the catalog's locales are used in sorted order.
//
// With fewer than two locales there is nothing to compare and the result is
// valid with no findings. A namespace absent from a locale counts as an
// empty key set, not a separate error class.
func ValidateCrossLocale(catalog Catalog, locales ...string) *ValidationResult {
	result := newValidationResult()

	if len(locales) == 0 {
		for locale := range catalog {
			locales = append(locales, locale)
		}
		sort.Strings(locales)
	}

	if len(locales) < 2 {
		return result
	}

	reference := locales[0]
	namespaces := namespaceUnion(catalog, locales)

	for _, target := range locales[1:] {
		for _, namespace := range namespaces {
			refKeys := namespaceKeys(catalog, reference, namespace)
			targetKeys := namespaceKeys(catalog, target, namespace)

			for _, key := range refKeys {
				if _, ok := catalog[target][namespace][key]; !ok {
					result.addError(Issue{
						Type:            IssueMissingKey,
						Namespace:       namespace,
						Key:             key,
						Locale:          target,
						ReferenceLocale: reference,
						Message:         fmt.Sprintf("locale %q is missing key %q present in reference locale %q", target, key, reference),
					})
				}
			}

			for _, key := range targetKeys {
				if _, ok := catalog[reference][namespace][key]; !ok {
					result.addError(Issue{
						Type:            IssueExtraKey,
						Namespace:       namespace,
						Key:             key,
						Locale:          target,
						ReferenceLocale: reference,
						Message:         fmt.Sprintf("locale %q has key %q absent from reference locale %q", target, key, reference),
					})
				}
			}
		}
	}

	return result
}

// namespaceUnion returns the union of namespace names across the given
// locales, sorted alphabetically.
func namespaceUnion(catalog Catalog, locales []string) []string {
	seen := make(map[string]struct{})
	for _, locale := range locales {
		for namespace := range catalog[locale] {
			seen[namespace] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// namespaceKeys returns the sorted key set of one (locale, namespace) pair;
// nil when the namespace is absent.
func namespaceKeys(catalog Catalog, locale, namespace string) []string {
	entries := catalog[locale][namespace]
	if len(entries) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
