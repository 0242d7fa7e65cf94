package utils

import "time"

// FormatLocal returns the provided time formatted in the machine's local time.
func FormatLocal(t time.Time) string {
	return t.In(time.Local).Format(time.RFC1123)
}

// FormatDuration renders an elapsed duration as h/m/s, dropping zero units.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return d.Truncate(time.Minute).String()
	}
	return d.String()
}
