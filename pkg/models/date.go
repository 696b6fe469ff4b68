package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DateInputFormat is the wire format accepted on request bodies and
	// used by the seed fixtures.
	DateInputFormat = "01/02/2006"
	// DateStoreFormat is how dates are persisted and serialized back.
	DateStoreFormat = "2006-01-02"
)

// Date is a calendar date without a time component. JSON input accepts
// MM/DD/YYYY (and the stored YYYY-MM-DD form, so read responses can be
// sent back unchanged); JSON output is always YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate parses a MM/DD/YYYY or YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateInputFormat, s)
	if err != nil {
		t, err = time.Parse(DateStoreFormat, s)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want MM/DD/YYYY", s)
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateStoreFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value stores the date as YYYY-MM-DD text.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case string:
		t, err := time.Parse(DateStoreFormat, x)
		if err != nil {
			return fmt.Errorf("scan date: %w", err)
		}
		d.Time = t
	case []byte:
		return d.Scan(string(x))
	case time.Time:
		d.Time = x
	case nil:
		d.Time = time.Time{}
	default:
		return fmt.Errorf("scan date: unsupported type %T", v)
	}

	return nil
}
