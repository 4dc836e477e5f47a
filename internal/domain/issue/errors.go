package issue

import "errors"

var (
	ErrIssueNotFound     = errors.New("Issue not found")
	ErrInvalidTransition = errors.New("Invalid status transition")
)
