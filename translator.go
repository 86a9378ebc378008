package colocale

import "fmt"

// countField is the reserved placeholder name that triggers plural
// resolution when it carries a numeric value.
const countField = "count"

// Translator is a lookup function scoped to one requirement's namespace and
// declared key set. It resolves plural variants, substitutes placeholders
// and degrades to the bare key string on any miss, so an unresolved key is
// visible in rendered output instead of crashing the caller.
type Translator struct {
	resolved  *ResolvedMessages
	namespace string
	declared  map[string]struct{}
	strict    bool
}

// TranslatorOption mutates a Translator during construction.
type TranslatorOption func(*Translator)

// WithStrictKeys makes Translate panic when a key outside the requirement's
// declared list is requested. The panic marks a programming error at the
// call site, not a missing translation; the default mode treats undeclared
// keys like any other miss.
func WithStrictKeys() TranslatorOption {
	return func(t *Translator) {
		t.strict = true
	}
}

// NewTranslator returns a Translator scoped to req.Namespace and req.Keys
// over the given resolved set.
func NewTranslator(resolved *ResolvedMessages, req Requirement, opts ...TranslatorOption) *Translator {
	t := &Translator{
		resolved:  resolved,
		namespace: req.Namespace,
		declared:  make(map[string]struct{}, len(req.Keys)),
	}
	for _, key := range req.Keys {
		t.declared[key] = struct{}{}
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}

	return t
}

// Translate resolves key to its final string. Resolution order:
//
//  1. when values carries a numeric "count", classify it for the resolved
//     set's locale and look up "namespace.key_category"
//  2. otherwise the literal "namespace.key"
//  3. fallback to the universal "namespace.key_other" variant
//  4. still nothing: return the bare key unchanged (the miss indicator)
//
// Placeholders are substituted only when values was supplied.
func (t *Translator) Translate(key string, values ...Values) string {
	if t == nil {
		return key
	}

	var vals Values
	if len(values) > 0 {
		vals = values[0]
	}

	if _, ok := t.declared[key]; !ok && t.strict {
		panic(fmt.Sprintf("colocale: key %q is not declared by requirement for namespace %q", key, t.namespace))
	}

	message, found := t.lookup(key, vals)
	if !found {
		return key
	}

	if vals != nil {
		return Substitute(message, vals)
	}
	return message
}

func (t *Translator) lookup(key string, vals Values) (string, bool) {
	base := t.namespace + "." + key

	if count, ok := numericValue(vals[countField]); ok {
		category := PluralCategoryFor(t.resolved.Locale(), count)
		if message, ok := t.resolved.Get(pluralKey(base, category)); ok {
			return message, true
		}
	}

	if message, ok := t.resolved.Get(base); ok {
		return message, true
	}

	return t.resolved.Get(pluralKey(base, PluralOther))
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
