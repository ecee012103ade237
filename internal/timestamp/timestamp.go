package timestamp

import (
	"fmt"
	"time"
)

// Layout is the only date format the stats API emits.
const Layout = "2006-01-02 15:04:05"

// DateLayout is used for calendar-date axis labels.
const DateLayout = "2006-01-02"

// Timestamp is a UTC instant with one-second resolution. It is comparable
// with == and usable as a map key.
type Timestamp struct {
	sec int64
}

// ParseError reports a string that does not match Layout exactly.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid timestamp %q: want format %s", e.Value, Layout)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads s as "YYYY-MM-DD HH:MM:SS" in UTC. Any other shape, including
// surrounding whitespace or trailing characters, is rejected.
func Parse(s string) (Timestamp, error) {
	if !matchesShape(s) {
		return Timestamp{}, &ParseError{Value: s}
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return Timestamp{}, &ParseError{Value: s, Err: err}
	}
	return Timestamp{sec: t.Unix()}, nil
}

// matchesShape checks digit positions and separators against Layout. It
// rejects signs, short fields and padding that time.Parse would tolerate.
func matchesShape(s string) bool {
	if len(s) != len(Layout) {
		return false
	}
	for i := 0; i < len(Layout); i++ {
		l, c := Layout[i], s[i]
		if l >= '0' && l <= '9' {
			if c < '0' || c > '9' {
				return false
			}
			continue
		}
		if c != l {
			return false
		}
	}
	return true
}

// FromTime converts t to a Timestamp, dropping sub-second precision.
func FromTime(t time.Time) Timestamp {
	return Timestamp{sec: t.Unix()}
}

// FromUnix builds a Timestamp from seconds since the epoch.
func FromUnix(sec int64) Timestamp {
	return Timestamp{sec: sec}
}

// Time returns the instant as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.sec, 0).UTC()
}

// Unix returns seconds since the epoch.
func (t Timestamp) Unix() int64 {
	return t.sec
}

func (t Timestamp) Before(u Timestamp) bool { return t.sec < u.sec }
func (t Timestamp) After(u Timestamp) bool  { return t.sec > u.sec }
func (t Timestamp) Equal(u Timestamp) bool  { return t.sec == u.sec }

// Compare returns -1, 0 or +1, suitable for slices.SortFunc.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case t.sec < u.sec:
		return -1
	case t.sec > u.sec:
		return 1
	default:
		return 0
	}
}

// String formats the timestamp with Layout, so Parse(t.String()) == t.
func (t Timestamp) String() string {
	return t.Time().Format(Layout)
}

// Date formats the calendar date only.
func (t Timestamp) Date() string {
	return t.Time().Format(DateLayout)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timestamp) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
