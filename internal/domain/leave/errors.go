package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("Leave request not found")
	ErrLeaveTypeNotFound     = errors.New("Leave type not found")
	ErrLeaveAlreadyProcessed = errors.New("Leave request already processed")
	ErrInvalidDateRange      = errors.New("End date must not be before start date")
)
