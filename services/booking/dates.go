package booking

import "time"

const dateLayout = "2006-01-02"

// GenerateDates returns, in ascending order, every calendar date in
// [today, today+horizonDays) falling on weekday. Dates are naive local
// dates; only the calendar day of today is used.
func GenerateDates(weekday time.Weekday, horizonDays int, today time.Time) []string {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	// Jump straight to the first matching day, then step a week at a time.
	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	var dates []string
	for i := offset; i < horizonDays; i += 7 {
		dates = append(dates, start.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}
