package record

import "time"

// JST is the office time zone; every displayed timestamp uses it.
var JST = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}()

// FormatDateTime renders a timestamp for documents and sheet rows.
// A zero time renders empty.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(JST).Format("2006-01-02 15:04:05")
}

// FormatDateShort renders the compact date used in file names.
func FormatDateShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(JST).Format("20060102")
}
