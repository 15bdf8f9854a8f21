package soda

import (
	"fmt"
	"strings"
)

// ParseErrors aggregates every diagnostic produced while scanning a
// directory tree of source files, so a caller that wants to report every
// broken file at once doesn't have to stop at the first one the way Parse
// itself does.
type ParseErrors struct {
	Errors []error
}

func (e ParseErrors) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "%d file(s) failed to parse:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&msg, "  %s\n", err)
	}
	return msg.String()
}
