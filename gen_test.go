package colocale

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateAccessors(t *testing.T) {
	source, err := GenerateAccessors("messages", LocaleMessages{
		"common": Namespace{
			"submit":          "Submit",
			"itemCount_one":   "1 item",
			"itemCount_other": "{{count}} items",
		},
		"user-profile": Namespace{
			"greeting": "Hello {{name}}",
		},
	})
	if err != nil {
		t.Fatalf("GenerateAccessors: %v", err)
	}

	got := string(source)
	for _, fragment := range []string{
		"package messages",
		`var CommonRequirement = colocale.NewRequirement("common",`,
		`var UserProfileRequirement = colocale.NewRequirement("user-profile",`,
		`"itemCount",`,
		`"submit",`,
		`"greeting",`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("generated source missing %q:\n%s", fragment, got)
		}
	}

	// Plural siblings collapse into one base key.
	if strings.Contains(got, "itemCount_one") || strings.Contains(got, "itemCount_other") {
		t.Fatalf("plural siblings leaked into generated source:\n%s", got)
	}
}

func TestGenerateAccessorsEmptyPackage(t *testing.T) {
	if _, err := GenerateAccessors("", LocaleMessages{}); err == nil {
		t.Fatal("expected error for empty package name")
	}
}

func TestBaseKeys(t *testing.T) {
	got := baseKeys(Namespace{
		"itemCount_one":   "1 item",
		"itemCount_other": "{{count}} items",
		"itemCount":       "items",
		"submit":          "Submit",
	})

	want := []string{"itemCount", "submit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("baseKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestExportedIdent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "common", want: "Common"},
		{name: "user-profile", want: "UserProfile"},
		{name: "user_profile", want: "UserProfile"},
		{name: "v2.errors", want: "V2Errors"},
	}

	for _, tc := range tests {
		if got := exportedIdent(tc.name); got != tc.want {
			t.Fatalf("exportedIdent(%q) = %q want %q", tc.name, got, tc.want)
		}
	}
}
