package domain

import "time"

// DateRange полуоткрытый диапазон дат [Start, End)
// Ночь End не входит в диапазон — это день выезда.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange создает диапазон, обнуляя компоненту времени обеих дат
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateToDay(start), End: truncateToDay(end)}
}

// IsValid возвращает true для непустого диапазона (Start < End)
func (r DateRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.Before(r.End)
}

// Nights возвращает количество ночей в диапазоне
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Dates возвращает все даты диапазона по порядку (без End)
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// truncateToDay обнуляет компоненту времени
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween возвращает количество календарных дней от from до to
// Отрицательный результат означает, что to раньше from.
func DaysBetween(from, to time.Time) int {
	f := truncateToDay(from)
	t := truncateToDay(to)
	return int(t.Sub(f).Hours() / 24)
}
