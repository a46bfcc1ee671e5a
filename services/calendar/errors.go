package calendar

import "fmt"

// DateOrderingCode identifies a range whose start falls after its end.
const DateOrderingCode = 1487

type DateOrderingError struct {
	Code    int
	Message string
}

func (e *DateOrderingError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func NewDateOrderingError() error {
	return &DateOrderingError{
		Code:    DateOrderingCode,
		Message: "start date may not exceed end date",
	}
}
