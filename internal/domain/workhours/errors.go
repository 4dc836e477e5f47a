package workhours

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("Already checked in today")
	ErrNoOpenEntry      = errors.New("No check-in found for today")
)
