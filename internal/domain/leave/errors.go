package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrInsufficientBalance  = errors.New("Insufficient leave balance")
	ErrAlreadyProcessed     = errors.New("Leave request already processed")
)
