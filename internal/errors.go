package internal

import (
	"errors"
	"fmt"
)

// ErrQuoteNotFound is returned when a single-currency response has no quote for
// the requested pair.
var ErrQuoteNotFound = errors.New("quote not found in response")

// InvalidDateError is returned before any request is made when a date is outside
// the range the service supports.
type InvalidDateError struct {
	Reason string
}

func (e *InvalidDateError) Error() string { return e.Reason }

// ServiceError reports a response with "success": false.
type ServiceError struct {
	Code int
	Type string
	Info string
}

func (e *ServiceError) Error() string { return e.Info }

// String includes the code, for logs.
func (e *ServiceError) String() string {
	return fmt.Sprintf("exchangerate.host error %d (%s): %s", e.Code, e.Type, e.Info)
}
