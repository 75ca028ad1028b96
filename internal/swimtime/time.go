package swimtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Times are stored as integer milliseconds and displayed as MM:SS.cc
// (minutes, seconds, centiseconds). Entry is forgiving: a bare SS.cc or a
// digit-only progressive string are accepted, but seconds >= 60 are rejected
// outright rather than wrapped into minutes.

var ErrInvalidTime = errors.New("invalid time")

// ParseDisplay parses a swim time into milliseconds. Accepted forms:
//   - "MM:SS.cc" (canonical display form)
//   - "HH:MM:SS.cc" (long-distance marks; hours fold into minutes)
//   - "SS.cc"
//   - digit-only progressive entry ("12055" -> 01:20.55)
func ParseDisplay(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTime
	}

	if strings.ContainsAny(s, ":.") {
		return parseFormatted(s)
	}
	return parseDigits(s)
}

func parseFormatted(s string) (int64, error) {
	var mm, ss, cc int64

	rest := s
	if i := strings.Index(rest, ":"); i >= 0 {
		v, err := strconv.ParseInt(rest[:i], 10, 64)
		if err != nil || v < 0 {
			return 0, ErrInvalidTime
		}
		mm = v
		rest = rest[i+1:]

		// A second colon means the first segment was hours.
		if j := strings.Index(rest, ":"); j >= 0 {
			v, err := strconv.ParseInt(rest[:j], 10, 64)
			if err != nil || v < 0 || v >= 60 {
				return 0, ErrInvalidTime
			}
			mm = mm*60 + v
			rest = rest[j+1:]
		}
	}

	secPart := rest
	if i := strings.Index(rest, "."); i >= 0 {
		centPart := rest[i+1:]
		if len(centPart) == 0 || len(centPart) > 2 {
			return 0, ErrInvalidTime
		}
		v, err := strconv.ParseInt(centPart, 10, 64)
		if err != nil || v < 0 {
			return 0, ErrInvalidTime
		}
		// ".5" means 50 centiseconds, not 5.
		if len(centPart) == 1 {
			v *= 10
		}
		cc = v
		secPart = rest[:i]
	}

	v, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil || v < 0 {
		return 0, ErrInvalidTime
	}
	ss = v

	if ss >= 60 || cc > 99 {
		return 0, ErrInvalidTime
	}

	return (mm*60+ss)*1000 + cc*10, nil
}

// parseDigits interprets a raw digit string right-aligned: the last two
// digits are centiseconds, the two before are seconds, the remainder minutes.
func parseDigits(s string) (int64, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTime
		}
	}

	for len(s) < 4 {
		s = "0" + s
	}

	cc, _ := strconv.ParseInt(s[len(s)-2:], 10, 64)
	ss, _ := strconv.ParseInt(s[len(s)-4:len(s)-2], 10, 64)
	mm := int64(0)
	if len(s) > 4 {
		v, err := strconv.ParseInt(s[:len(s)-4], 10, 64)
		if err != nil {
			return 0, ErrInvalidTime
		}
		mm = v
	}

	if ss >= 60 {
		return 0, ErrInvalidTime
	}

	return (mm*60+ss)*1000 + cc*10, nil
}

// FormatMs renders milliseconds in the canonical MM:SS.cc display form.
// Sub-centisecond precision is truncated.
func FormatMs(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	cc := (ms % 1000) / 10
	totalSec := ms / 1000
	return fmt.Sprintf("%02d:%02d.%02d", totalSec/60, totalSec%60, cc)
}

// Seconds converts milliseconds to float seconds, for trend fitting.
func Seconds(ms int64) float64 {
	return float64(ms) / 1000.0
}
