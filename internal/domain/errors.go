package domain

import "fmt"

// The error types below form the closed set of expected failures the services
// return. The HTTP layer is the single place they are translated into status
// codes; anything not in this set is treated as an internal failure.

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

type LockerOccupiedError struct {
	LockerID string
}

func (e *LockerOccupiedError) Error() string {
	return fmt.Sprintf("locker with ID %s is already occupied", e.LockerID)
}

type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid rent status %q", e.Value)
}

type InvalidTransitionError struct {
	From RentStatus
	To   RentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("rent status cannot change from %s to %s", e.From, e.To)
}

type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
