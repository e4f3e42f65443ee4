package style

import (
	"fmt"
	"strings"
)

// ValidationError reports one construction-time rule violation with the
// configuration field path that triggered it.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidConfigError aggregates every rule a Config violated. New
// collects all violations rather than failing fast.
type InvalidConfigError struct {
	Name string
	Errs []ValidationError
}

func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, ve := range e.Errs {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("invalid style %q: %s", e.Name, strings.Join(msgs, "; "))
}
