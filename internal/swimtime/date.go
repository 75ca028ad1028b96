package swimtime

import (
	"errors"
	"time"
)

// Dates are stored as ISO "2006-01-02" and displayed as "02/01/2006".

const (
	ISODate     = "2006-01-02"
	DisplayDate = "02/01/2006"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseISO parses a stored ISO date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseDisplayDate parses user input. Accepts DD/MM/YYYY and a digit-only
// progressive DDMMYYYY mask.
func ParseDisplayDate(s string) (time.Time, error) {
	if t, err := time.Parse(DisplayDate, s); err == nil {
		return t, nil
	}
	if len(s) == 8 && allDigits(s) {
		if t, err := time.Parse("02012006", s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ToISO renders a date in storage form.
func ToISO(t time.Time) string {
	return t.Format(ISODate)
}

// ToDisplay renders a date in DD/MM/YYYY form.
func ToDisplay(t time.Time) string {
	return t.Format(DisplayDate)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
