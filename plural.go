package colocale

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralCategoryFor classifies a count for a locale using the CLDR cardinal
// rules shipped with golang.org/x/text. "other" is a valid result for every
// locale; it is also the deterministic answer for non-finite counts and for
// locales the rule table does not know.
//
// Negative counts classify by absolute value, matching CLDR operand
// semantics where n is the absolute numeric value.
func PluralCategoryFor(locale string, count float64) PluralCategory {
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return PluralOther
	}

	n := math.Abs(count)

	// CLDR operands: i integer digits, v/w visible fraction digit counts
	// (with/without trailing zeros), f/t fraction digit values. Rendering
	// through strconv gives the minimal decimal form, so v==w and f==t.
	if n > math.MaxInt64 {
		return PluralOther
	}
	i := int(n)

	var v, f int
	rendered := strconv.FormatFloat(n, 'f', -1, 64)
	if idx := strings.IndexByte(rendered, '.'); idx >= 0 {
		frac := rendered[idx+1:]
		v = len(frac)
		if parsed, err := strconv.Atoi(frac); err == nil {
			f = parsed
		}
	}

	tag := language.Make(normalizeLocale(locale))
	form := plural.Cardinal.MatchPlural(tag, i, v, v, f, f)
	return categoryFromForm(form)
}

func categoryFromForm(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// parsePluralSuffix reports whether key is a plural family member, and if
// so returns its base name and category. Only the closed CLDR category set
// qualifies; "total_count" is a plain key, not a plural sibling.
func parsePluralSuffix(key string) (base string, category PluralCategory, ok bool) {
	idx := strings.LastIndexByte(key, '_')
	if idx <= 0 || idx == len(key)-1 {
		return "", "", false
	}

	suffix := PluralCategory(key[idx+1:])
	for _, candidate := range pluralCategories {
		if suffix == candidate {
			return key[:idx], candidate, true
		}
	}
	return "", "", false
}

// pluralKey forms the catalog key for a base name and category.
func pluralKey(base string, category PluralCategory) string {
	return base + "_" + string(category)
}
