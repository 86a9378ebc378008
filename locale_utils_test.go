package colocale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "en", want: "en"},
		{in: "pt_BR", want: "pt-BR"},
		{in: "  ja  ", want: "ja"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := NormalizeLocale(tc.in); got != tc.want {
			t.Fatalf("NormalizeLocale(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeLocalesKeepsOrder(t *testing.T) {
	// Declaration order must survive: the first locale is the cross-locale
	// reference.
	got := NormalizeLocales([]string{"ja", "en_US", "", "ja", "en-US"})

	want := []string{"ja", "en-US"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NormalizeLocales mismatch (-want +got):\n%s", diff)
	}
}
