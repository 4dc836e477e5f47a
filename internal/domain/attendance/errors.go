package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("Attendance record not found")
)
