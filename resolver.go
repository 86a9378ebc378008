package colocale

// pluralSiblings probes a namespace's entry map for the plural-suffixed
// siblings of base that actually exist, returned in canonical category
// order. This is an existence probe, not a value lookup.
func pluralSiblings(entries Namespace, base string) []PluralCategory {
	if len(entries) == 0 || base == "" {
		return nil
	}

	var found []PluralCategory
	for _, category := range pluralCategories {
		if _, ok := entries[pluralKey(base, category)]; ok {
			found = append(found, category)
		}
	}
	return found
}

// PickMessages extracts only the requested entries from a full catalog into
// a compact resolved set for one locale.
//
// For every declared key the exact entry is copied under "namespace.key"
// when present, and independently every existing plural sibling is copied
// under "namespace.key_category". A key can be both a literal message and
// the base of a plural family; both are emitted when both exist.
//
// A locale absent from the catalog is a legitimate "not yet loaded" state:
// the result is an empty but well-formed set, never an error. The output
// never contains entries that do not exist verbatim in the source catalog.
func PickMessages(catalog Catalog, requirements []Requirement, locale string) *ResolvedMessages {
	resolved := newResolvedMessages(locale)

	namespaces, ok := catalog[locale]
	if !ok {
		return resolved
	}

	for _, req := range requirements {
		entries := namespaces[req.Namespace]
		if entries == nil {
			continue
		}

		for _, key := range req.Keys {
			if value, ok := entries[key]; ok {
				resolved.set(req.Namespace+"."+key, value)
			}

			for _, category := range pluralSiblings(entries, key) {
				sibling := pluralKey(key, category)
				resolved.set(req.Namespace+"."+sibling, entries[sibling])
			}
		}
	}

	return resolved
}
