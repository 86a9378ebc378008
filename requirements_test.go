package colocale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRequirementCopiesKeys(t *testing.T) {
	keys := []string{"submit", "cancel"}
	req := NewRequirement("common", keys...)

	keys[0] = "mutated"

	if req.Keys[0] != "submit" {
		t.Fatalf("requirement keys aliased caller slice: %v", req.Keys)
	}
}

func TestMergeRequirements(t *testing.T) {
	header := []Requirement{NewRequirement("common", "title")}
	body := []Requirement{
		NewRequirement("common", "title"),
		NewRequirement("profile", "greeting"),
	}

	merged := MergeRequirements(header, body)

	want := []Requirement{
		NewRequirement("common", "title"),
		NewRequirement("common", "title"),
		NewRequirement("profile", "greeting"),
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeRequirementsEmpty(t *testing.T) {
	if merged := MergeRequirements(); merged != nil {
		t.Fatalf("expected nil, got %v", merged)
	}
	if merged := MergeRequirements(nil, []Requirement{}); merged != nil {
		t.Fatalf("expected nil, got %v", merged)
	}
}
