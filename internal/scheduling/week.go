package scheduling

import "time"

// weekBounds returns the half-open [monday, nextMonday) interval of the quota
// week containing at, in unix milliseconds. Monday 00:00 is resolved in loc,
// so a slot starting exactly at Monday midnight opens a new week and one
// starting a millisecond earlier still belongs to the previous one.
func weekBounds(at int64, loc *time.Location) (int64, int64) {
	t := time.UnixMilli(at).In(loc)

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	monday := day.AddDate(0, 0, -mondayOffset(day.Weekday()))

	return monday.UnixMilli(), monday.AddDate(0, 0, 7).UnixMilli()
}

func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
