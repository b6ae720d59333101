package dto

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/garage_books/internal/apperrors"
)

const dateLayout = "2006-01-02"

// Date is a calendar date. JSON input may be "2006-01-02" or RFC 3339;
// output is always "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	t, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// TimeOrZero returns the wrapped time, or the zero time for a nil Date.
func (d *Date) TimeOrZero() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

// ParseDate parses a query or body date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}
