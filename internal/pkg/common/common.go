package common

import "time"

// TruncateAddress shortens a hex address for display, keeping the prefix and
// the last four characters.
func TruncateAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// FormatDate renders a timestamp the way loan documents present dates,
// e.g. "28 Nov 2026".
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}
