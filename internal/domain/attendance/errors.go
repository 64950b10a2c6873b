package attendance

import "errors"

// Attendance domain errors
var (
	// Punch state machine
	ErrAlreadyPunchedIn  = errors.New("you have already punched in today")
	ErrAlreadyPunchedOut = errors.New("you have already punched out today")
	ErrNotPunchedIn      = errors.New("you have not punched in yet")
	ErrPunchTooSoon      = errors.New("punch-out must be later than punch-in")
	ErrOutsideZone       = errors.New("you are outside the allowed punch zones")

	// General
	ErrPunchNotFound  = errors.New("attendance record not found")
	ErrPolicyNotFound = errors.New("attendance settings not configured for this tenant")
	ErrInvalidStatus  = errors.New("invalid attendance status")
)
