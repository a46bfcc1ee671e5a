package calendar

import (
	"time"

	"minimalapi/models"
)

// DefaultCalendarService treats every Saturday and Sunday as a day off and
// knows no holidays.
type DefaultCalendarService struct{}

// WorkDays lists the weekdays of [r.Start, r.End] by calendar date, ignoring
// the time of day. It fails with a *DateOrderingError when Start is after End.
func (s *DefaultCalendarService) WorkDays(r models.DateRange) (models.WorkDaysInfo, error) {
	if r.Start.After(r.End.Time) {
		return models.WorkDaysInfo{}, NewDateOrderingError()
	}

	// Both bounds are taken in the start's location so the loop runs on a
	// single calendar.
	first := r.Start.Day()
	ey, em, ed := r.End.In(first.Location()).Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, first.Location())

	workDays := make([]models.Date, 0)
	y, m, d := first.Date()
	for day := first.Time; !day.After(last); {
		if IsWorkDay(day) {
			workDays = append(workDays, models.Date{Time: day})
		}
		// Stepping by calendar day, not 24h, keeps midnight across DST changes.
		d++
		day = time.Date(y, m, d, 0, 0, 0, 0, first.Location())
	}

	return models.WorkDaysInfo{
		DateRange: r,
		WorkDays:  workDays,
	}, nil
}

// IsWorkDay reports whether t falls on Monday through Friday.
func IsWorkDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}
