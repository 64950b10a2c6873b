package salary

import "errors"

var (
	ErrSalaryNotFound = errors.New("salary record not found")
	ErrSalaryLocked   = errors.New("salary is PAID and locked")
	ErrAlreadyPaid    = errors.New("salary already marked PAID")
)
