package utils

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrBookmarkNotFound    = errors.New("bookmark not found")
	ErrSessionNotFound     = errors.New("quiz session not found")

	// Input validation: the selected option does not exist for the current
	// question. Distinct from the illegal-state errors below.
	ErrInvalidOption = errors.New("selected option out of range")

	// Illegal state transitions. The session is left unchanged.
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrAwaitingAnswer  = errors.New("current question not answered yet")
	ErrQuizCompleted   = errors.New("quiz already completed")
	ErrQuizInProgress  = errors.New("quiz not completed yet")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
