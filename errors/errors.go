package errors

import "fmt"

var (
	ErrRosterFull       = fmt.Errorf("file is full")
	ErrAttendeeNotFound = fmt.Errorf("attendee not found in the file")
	ErrMissingAttendee  = fmt.Errorf("attendee name is required")
	ErrAllocation       = fmt.Errorf("memory allocation failed")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
)
