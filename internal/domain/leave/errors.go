package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDayCount       = errors.New("days does not match the requested date range")
)
