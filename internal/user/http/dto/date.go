// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for date-only values.
const dateLayout = "2006-01-02"

// Date is a date-only value used for the dob attribute. It accepts both
// date-only and RFC 3339 timestamps on input and always renders date-only.
type Date time.Time

// UnmarshalJSON parses a JSON string into a Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
		}
	}

	*d = Date(t.UTC())
	return nil
}

// MarshalJSON renders the Date in date-only format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

// Time returns the underlying time value.
func (d Date) Time() time.Time {
	return time.Time(d)
}
