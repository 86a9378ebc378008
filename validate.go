package colocale

import (
	"fmt"
	"regexp"
	"sort"
)

// RawNamespace is the entry map of one namespace as decoded from a catalog
// file, before any shape guarantee. Values should be strings; anything else
// is a validation finding, which is why validation runs on the raw form.
type RawNamespace map[string]any

// RawLocaleMessages maps namespace names to raw entry maps for one locale.
type RawLocaleMessages map[string]RawNamespace

// RawCatalog maps locale identifiers to raw locale messages.
type RawCatalog map[string]RawLocaleMessages

// IssueType tags a validation finding with its taxonomy class.
type IssueType string

const (
	IssueMissingPluralOther IssueType = "missing-plural-other"
	IssueMissingPluralOne   IssueType = "missing-plural-one"
	IssueInvalidNesting     IssueType = "invalid-nesting"
	IssueInvalidKeyName     IssueType = "invalid-key-name"
	IssueInvalidPlaceholder IssueType = "invalid-placeholder"
	IssueMissingKey         IssueType = "missing-key"
	IssueExtraKey           IssueType = "extra-key"
)

// Issue is a single validation finding. Locale and ReferenceLocale are set
// only by cross-locale checks.
type Issue struct {
	Type            IssueType
	Namespace       string
	Key             string
	Message         string
	Locale          string
	ReferenceLocale string
}

// ValidationResult aggregates the findings of one validation run. Errors
// and warnings keep the order in which checks produced them; findings
// accumulate, earlier failures never short-circuit later checks.
type ValidationResult struct {
	Valid    bool
	Errors   []Issue
	Warnings []Issue
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{Valid: true}
}

func (r *ValidationResult) addError(issue Issue) {
	r.Errors = append(r.Errors, issue)
	r.Valid = false
}

func (r *ValidationResult) addWarning(issue Issue) {
	r.Warnings = append(r.Warnings, issue)
}

// Merge folds other into r. Validity is the conjunction of both results.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Valid {
		r.Valid = false
	}
}

var (
	keyNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

	// placeholderSpanPattern captures every {{...}} span including
	// malformed ones, so invalid identifiers can be reported.
	placeholderSpanPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

	placeholderNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Validator checks one locale's catalog for internal well-formedness. A
// zero-value Validator applies the default policy where only the "other"
// plural sibling is mandatory.
type Validator struct {
	requirePluralOne bool
}

// ValidatorOption mutates a Validator during construction.
type ValidatorOption func(*Validator)

// WithRequiredPluralOne escalates a missing "one" sibling from a warning to
// an error. Only useful when every covered locale actually distinguishes
// "one"; the universal requirement stays "other".
func WithRequiredPluralOne() ValidatorOption {
	return func(v *Validator) {
		v.requirePluralOne = true
	}
}

// NewValidator builds a Validator via the supplied options.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// ValidateLocale runs every namespace of one locale through
// ValidateNamespace and aggregates the findings. Namespaces are visited in
// sorted order so output is deterministic.
func (v *Validator) ValidateLocale(raw RawLocaleMessages) *ValidationResult {
	result := newValidationResult()

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result.Merge(v.ValidateNamespace(name, raw[name]))
	}
	return result
}

// ValidateNamespace checks a single namespace's raw entry map. The checks
// are independent: key naming, nesting, placeholder syntax and plural
// completeness all run even when earlier ones fail.
func (v *Validator) ValidateNamespace(namespace string, entries RawNamespace) *ValidationResult {
	result := newValidationResult()

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !keyNamePattern.MatchString(key) {
			result.addError(Issue{
				Type:      IssueInvalidKeyName,
				Namespace: namespace,
				Key:       key,
				Message:   fmt.Sprintf("key %q must start with a letter or underscore followed by letters, digits, underscores or dots", key),
			})
		}

		value, ok := entries[key].(string)
		if !ok {
			result.addError(Issue{
				Type:      IssueInvalidNesting,
				Namespace: namespace,
				Key:       key,
				Message:   fmt.Sprintf("value of %q must be a string; catalogs are flat, use dots inside keys for grouping", key),
			})
			continue
		}

		for _, span := range placeholderSpanPattern.FindAllStringSubmatch(value, -1) {
			if !placeholderNamePattern.MatchString(span[1]) {
				result.addError(Issue{
					Type:      IssueInvalidPlaceholder,
					Namespace: namespace,
					Key:       key,
					Message:   fmt.Sprintf("placeholder %q must enclose an identifier", span[0]),
				})
			}
		}
	}

	v.checkPluralFamilies(namespace, keys, result)

	return result
}

// checkPluralFamilies enforces plural completeness: every base name with at
// least one plural-suffixed sibling needs an "other" sibling, the universal
// fallback for all locales.
func (v *Validator) checkPluralFamilies(namespace string, keys []string, result *ValidationResult) {
	families := make(map[string]map[PluralCategory]struct{})
	for _, key := range keys {
		base, category, ok := parsePluralSuffix(key)
		if !ok {
			continue
		}
		if families[base] == nil {
			families[base] = make(map[PluralCategory]struct{})
		}
		families[base][category] = struct{}{}
	}

	bases := make([]string, 0, len(families))
	for base := range families {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	for _, base := range bases {
		categories := families[base]
		if _, ok := categories[PluralOther]; !ok {
			result.addError(Issue{
				Type:      IssueMissingPluralOther,
				Namespace: namespace,
				Key:       base,
				Message:   fmt.Sprintf("plural family %q has no %q sibling", base, pluralKey(base, PluralOther)),
			})
		}

		if _, ok := categories[PluralOne]; !ok {
			issue := Issue{
				Type:      IssueMissingPluralOne,
				Namespace: namespace,
				Key:       base,
				Message:   fmt.Sprintf("plural family %q has no %q sibling", base, pluralKey(base, PluralOne)),
			}
			if v.requirePluralOne {
				result.addError(issue)
			} else {
				result.addWarning(issue)
			}
		}
	}
}
