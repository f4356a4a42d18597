package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" wall-clock time
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString is a wall-clock time in 24-hour "HH:MM" form.
// Zero value ("") means "not set".
type TimeString string

// NewTimeString берёт часы и минуты из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и нормализует строку вида "H:MM" или "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := parse(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String returns the raw "HH:MM" value
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the time is unset
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the HH:MM format and ranges
func (t TimeString) Validate() error {
	_, _, err := parse(string(t))
	return err
}

// Hour returns the hour component, or 0 if the value is invalid
func (t TimeString) Hour() int {
	h, _, _ := parse(string(t))
	return h
}

// Minute returns the minute component, or 0 if the value is invalid
func (t TimeString) Minute() int {
	_, m, _ := parse(string(t))
	return m
}

// Minutes returns minutes since midnight
func (t TimeString) Minutes() (int, error) {
	h, m, err := parse(string(t))
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. PostgreSQL TIME приходит как "HH:MM:SS" или time.Time;
// секунды допускаются только здесь и отбрасываются
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	s = strings.TrimSpace(s)
	if parts := strings.Split(s, ":"); len(parts) == 3 {
		if !isDigits(parts[2], 2) || parts[2] > "59" {
			return fmt.Errorf("%w: invalid seconds in %q", ErrInvalidTimeString, s)
		}
		s = parts[0] + ":" + parts[1]
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// parse принимает только "H:MM" и "HH:MM": часы из 1-2 цифр без знака, минуты ровно из двух
func parse(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if !isDigits(parts[0], 1) && !isDigits(parts[0], 2) {
		return 0, 0, fmt.Errorf("%w: invalid hour in %q", ErrInvalidTimeString, s)
	}
	hour, _ := strconv.Atoi(parts[0])
	if hour > 23 {
		return 0, 0, fmt.Errorf("%w: invalid hour in %q", ErrInvalidTimeString, s)
	}

	if !isDigits(parts[1], 2) {
		return 0, 0, fmt.Errorf("%w: invalid minute in %q", ErrInvalidTimeString, s)
	}
	minute, _ := strconv.Atoi(parts[1])
	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: invalid minute in %q", ErrInvalidTimeString, s)
	}

	return hour, minute, nil
}

// isDigits reports whether s consists of exactly n ASCII digits
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
