package colocale

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   Values
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Hello {{name}}",
			values:   Values{"name": "Alice"},
			want:     "Hello Alice",
		},
		{
			name:     "global replacement",
			template: "{{name}} and {{name}} again",
			values:   Values{"name": "Bob"},
			want:     "Bob and Bob again",
		},
		{
			name:     "integer renders decimal",
			template: "{{count}} items",
			values:   Values{"count": 42},
			want:     "42 items",
		},
		{
			name:     "float renders decimal",
			template: "{{ratio}}%",
			values:   Values{"ratio": 99.5},
			want:     "99.5%",
		},
		{
			name:     "missing values stay verbatim",
			template: "Hello {{name}}, you have {{count}} items",
			values:   Values{"name": "Carol"},
			want:     "Hello Carol, you have {{count}} items",
		},
		{
			name:     "no values",
			template: "Hello {{name}}",
			values:   nil,
			want:     "Hello {{name}}",
		},
		{
			name:     "no placeholders",
			template: "static text",
			values:   Values{"name": "unused"},
			want:     "static text",
		},
		{
			name:     "malformed span untouched",
			template: "broken {{not closed",
			values:   Values{"not": "x"},
			want:     "broken {{not closed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Substitute(tc.template, tc.values); got != tc.want {
				t.Fatalf("Substitute(%q) = %q want %q", tc.template, got, tc.want)
			}
		})
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	values := Values{"name": "Alice", "count": 3}
	once := Substitute("Hello {{name}}, {{count}} items", values)

	if twice := Substitute(once, values); twice != once {
		t.Fatalf("second substitution changed output: %q -> %q", once, twice)
	}
}

func TestSubstituteStrict(t *testing.T) {
	got, err := SubstituteStrict("Hello {{name}}, {{count}} items, {{name}}", Values{"name": "Alice"})

	// The incomplete string is still produced.
	if got != "Hello Alice, {{count}} items, Alice" {
		t.Fatalf("SubstituteStrict output = %q", got)
	}

	var missing *MissingPlaceholdersError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingPlaceholdersError, got %v", err)
	}
	if diff := cmp.Diff([]string{"count"}, missing.Names); diff != "" {
		t.Fatalf("missing names mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteStrictComplete(t *testing.T) {
	got, err := SubstituteStrict("Hello {{name}}", Values{"name": "Alice"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Hello Alice" {
		t.Fatalf("SubstituteStrict = %q", got)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: "text", want: "text"},
		{value: 7, want: "7"},
		{value: int64(-3), want: "-3"},
		{value: uint8(200), want: "200"},
		{value: 2.5, want: "2.5"},
		{value: float32(0.5), want: "0.5"},
		{value: true, want: "true"},
	}

	for _, tc := range tests {
		if got := stringify(tc.value); got != tc.want {
			t.Fatalf("stringify(%v) = %q want %q", tc.value, got, tc.want)
		}
	}
}
