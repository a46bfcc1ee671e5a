package calendar

import "minimalapi/models"

// CalendarService computes working days over date ranges.
type CalendarService interface {
	WorkDays(r models.DateRange) (models.WorkDaysInfo, error)
}
