package models

// DateRange is an inclusive pair of dates. Ordering is not enforced here.
type DateRange struct {
	Start Date `json:"start" swaggertype:"string" format:"date-time" example:"2024-01-01"`
	End   Date `json:"end" swaggertype:"string" format:"date-time" example:"2024-01-07"`
}

// WorkDaysInfo echoes the requested range with the weekdays it contains.
type WorkDaysInfo struct {
	DateRange
	WorkDays []Date `json:"workDays" swaggertype:"array,string"`
}

// ApiError is the payload of a rejected request.
type ApiError struct {
	Code    int    `json:"code" example:"1487"`
	Message string `json:"message" example:"start date may not exceed end date"`
}
