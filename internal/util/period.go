package util

import (
	"fmt"
	"time"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// PeriodStart returns the beginning of the reporting window that ends at now.
// An empty period means "month". The zero time is returned for "all".
func PeriodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case "", PeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case PeriodYear:
		return now.AddDate(-1, 0, 0), nil
	case PeriodAll:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("invalid period %q, must be one of week, month, year, all", period)
	}
}
