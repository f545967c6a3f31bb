package internal

import "time"

// EarliestDate is the first date the service has rates for.
var EarliestDate = NewDate(1999, time.January, 4)

// now is swapped in tests.
var now = time.Now

// Today is the current calendar date in local time.
func Today() Date { return DateOf(now()) }

// ValidateDate accepts dates from EarliestDate up to and including today.
func ValidateDate(date Date) error {
	if date.After(Today()) {
		return &InvalidDateError{Reason: "The date must be in the past."}
	}
	if date.Before(EarliestDate) {
		return &InvalidDateError{Reason: "The date cannot be before 4th January 1999."}
	}
	return nil
}

// ValidateStartAndEndDates checks both bounds, from first, and their order.
func ValidateStartAndEndDates(from, to Date) error {
	if err := ValidateDate(from); err != nil {
		return err
	}
	if err := ValidateDate(to); err != nil {
		return err
	}
	if from.After(to) {
		return &InvalidDateError{Reason: "The 'from' date must be before the 'to' date."}
	}
	return nil
}
