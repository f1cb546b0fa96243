package service

import (
	"strings"
	"time"
)

// Accepted ISO-8601 time-of-day layouts: HH, HH:MM, HH:MM:SS, HH:MM:SS.ffffff
var horaLayouts = []string{
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
	"15",
}

const horaStorageLayout = "15:04:05.999999"

// ParseHora parses an ISO time-of-day string.
func ParseHora(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var (
		t   time.Time
		err error
	)
	for _, layout := range horaLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatHora renders a time-of-day as HH:MM:SS, with a fraction only when non-zero.
func FormatHora(t time.Time) string {
	return t.Format(horaStorageLayout)
}

// normalizeHora reformats a stored TIME value; unparsable values pass through.
func normalizeHora(s string) string {
	t, err := ParseHora(s)
	if err != nil {
		return s
	}
	return FormatHora(t)
}
