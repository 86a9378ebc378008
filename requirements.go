package colocale

// Requirement declares what a consumer needs resolved: a namespace plus the
// ordered list of base key names it will translate. Requirements are
// typically declared next to the component that consumes them.
type Requirement struct {
	Namespace string
	Keys      []string
}

// NewRequirement builds a Requirement with a defensive copy of the key list
// so later mutation of the caller's slice cannot alter the declaration.
func NewRequirement(namespace string, keys ...string) Requirement {
	req := Requirement{Namespace: namespace}
	if len(keys) > 0 {
		req.Keys = append([]string(nil), keys...)
	}
	return req
}

// MergeRequirements flattens nested requirement groups into one ordered
// list. Duplicates are preserved: later sections may legitimately re-fetch
// the same entry, and the resolver tolerates that without error.
func MergeRequirements(groups ...[]Requirement) []Requirement {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	if total == 0 {
		return nil
	}

	merged := make([]Requirement, 0, total)
	for _, group := range groups {
		merged = append(merged, group...)
	}
	return merged
}
