package service

import "time"

const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// PeriodStart maps a symbolic period to the start timestamp of the
// window containing now. Unrecognized periods silently fall back to
// month; callers never get an error out of a bad period string.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		// Monday 00:00 of the current week; Sunday belongs to the
		// week started the previous Monday.
		offset := (int(now.Weekday()) + 6) % 7
		d := now.AddDate(0, 0, -offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	case PeriodQuarter:
		quarter := (int(now.Month()) - 1) / 3
		return time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}
