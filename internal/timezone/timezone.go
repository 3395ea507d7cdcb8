package timezone

import (
	"strings"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// InvalidDate é exibido no lugar de datas nulas ou inválidas.
const InvalidDate = "Invalid date"

const (
	DisplayLayout   = "02/01/2006 às 15:04"
	ShortDateLayout = "02/01/2006"
	InputLayout     = "2006-01-02T15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// tzdata ausente no container
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Format formata t com layout; a data zero vira InvalidDate.
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.Format(layout)
}

// FormatInput devolve t no formato do campo datetime-local, ou "" se inválida.
func FormatInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(InputLayout)
}

// ParseInput aceita o formato datetime-local e RFC 3339.
func ParseInput(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = Location(DefaultTimezone)
	}

	if t, err := time.ParseInLocation(InputLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}
