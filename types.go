package colocale

import "sort"

// Namespace is the flat entry map of one (locale, namespace) pair. Keys are
// flat; dots inside a key are a naming convention, not structural nesting.
// Plural families are encoded as sibling keys sharing a base name plus an
// underscore-and-category suffix, e.g. "itemCount_one", "itemCount_other".
type Namespace map[string]string

// LocaleMessages maps namespace names to their entry maps for one locale.
type LocaleMessages map[string]Namespace

// Catalog maps locale identifiers to their namespaces. Catalogs are treated
// as read-only inputs by every component in this package.
type Catalog map[string]LocaleMessages

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// pluralCategories is the closed CLDR category set in canonical order. The
// order keeps sibling discovery and validation output deterministic.
var pluralCategories = []PluralCategory{
	PluralZero,
	PluralOne,
	PluralTwo,
	PluralFew,
	PluralMany,
	PluralOther,
}

// Values carries placeholder values supplied at lookup time. Entries may be
// strings or numbers; they are stringified during substitution and never
// stored.
type Values map[string]any

// ResolvedMessages is the compact, locale-tagged output of PickMessages.
// It is freshly allocated per call and shares no memory with the source
// catalog, so it is safe to hand to rendering code without aliasing
// concerns.
type ResolvedMessages struct {
	locale   string
	messages map[string]string
}

func newResolvedMessages(locale string) *ResolvedMessages {
	return &ResolvedMessages{
		locale:   locale,
		messages: make(map[string]string),
	}
}

// Locale returns the locale the set was resolved for.
func (r *ResolvedMessages) Locale() string {
	if r == nil {
		return ""
	}
	return r.locale
}

// Get returns the message stored under the synthetic "namespace.key" form.
func (r *ResolvedMessages) Get(key string) (string, bool) {
	if r == nil || r.messages == nil {
		return "", false
	}
	msg, ok := r.messages[key]
	return msg, ok
}

// Has reports whether the synthetic key exists in the set.
func (r *ResolvedMessages) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Len returns the number of resolved entries.
func (r *ResolvedMessages) Len() int {
	if r == nil {
		return 0
	}
	return len(r.messages)
}

// Keys returns every synthetic key in the set, sorted alphabetically.
func (r *ResolvedMessages) Keys() []string {
	if r == nil || len(r.messages) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r.messages))
	for key := range r.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (r *ResolvedMessages) set(key, value string) {
	if r == nil {
		return
	}
	if r.messages == nil {
		r.messages = make(map[string]string)
	}
	r.messages[key] = value
}

// SplitKey decomposes a synthetic key back into (namespace, key) at the
// first dot. Keys containing further dots keep them on the key side, so the
// decomposition is unique only up to the first separator.
func SplitKey(synthetic string) (namespace, key string) {
	for i := 0; i < len(synthetic); i++ {
		if synthetic[i] == '.' {
			return synthetic[:i], synthetic[i+1:]
		}
	}
	return "", synthetic
}
