package entities

import "time"

// TimeWindow полуоткрытый интервал [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindow окно от полуночи startDate до полуночи endDate.
func DayWindow(startDate, endDate time.Time) TimeWindow {
	return TimeWindow{
		Start: midnight(startDate),
		End:   midnight(endDate),
	}
}

// Hours целое число часов в окне, округление вниз.
func (w TimeWindow) Hours() int64 {
	return int64(w.End.Sub(w.Start) / time.Hour)
}

func (w TimeWindow) Valid() bool {
	return w.End.After(w.Start)
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
