package utils

import "time"

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalDate returns the calendar date of a unix timestamp at a fixed UTC offset in seconds.
func LocalDate(unix int64, gmtOffset int) time.Time {
	return TruncateToDate(time.Unix(unix, 0).In(time.FixedZone("", gmtOffset)))
}

// NextDays returns n consecutive calendar dates starting the day after from.
func NextDays(from time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	start := TruncateToDate(from)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i+1)
	}
	return days
}

// MondayFirstWeekday maps time.Weekday to 0 = Monday ... 6 = Sunday.
func MondayFirstWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
