package cli

import (
	"fmt"
	"strings"
)

// UsageError reports an invalid combination of command-line
// flags. It is never retried: the process exits non-zero.
type UsageError struct {
	// Flags lists the offending flags without dashes.
	Flags []string

	// Reason describes the problem.
	Reason string

	// Err is the underlying parser error, if any.
	Err error
}

func (ue *UsageError) Error() string {
	if len(ue.Flags) == 0 {
		return ue.Reason
	}

	names := make([]string, 0, len(ue.Flags))
	for _, fl := range ue.Flags {
		names = append(names, "--"+fl)
	}

	return fmt.Sprintf("%s: %s", ue.Reason, strings.Join(names, ", "))
}

func (ue *UsageError) Unwrap() error {
	return ue.Err
}
