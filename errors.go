package colocale

import (
	"fmt"
	"strings"
)

// MissingPlaceholdersError reports the placeholders of a template that had
// no value supplied during strict substitution. It is recoverable: the
// partially substituted string is still produced alongside it.
type MissingPlaceholdersError struct {
	Template string
	Names    []string
}

func (e *MissingPlaceholdersError) Error() string {
	return fmt.Sprintf("colocale: missing placeholder values [%s] for template %q",
		strings.Join(e.Names, ", "), e.Template)
}
