package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

const dateLayout = "2006-01-02"

// parseDate coerces an optional "YYYY-MM-DD" form value. Format errors are
// caught earlier by the `datetime` validator tag, so a failed parse here just
// yields an unset value.
func parseDate(s string) null.Time {
	if s == "" {
		return null.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}
