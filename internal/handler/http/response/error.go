package response

import (
	"errors"
	"net/http"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/domain/auth"
	"github.com/nexhr/hrms-backend-go/internal/domain/bell"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/holiday"
	"github.com/nexhr/hrms-backend-go/internal/domain/leave"
	"github.com/nexhr/hrms-backend-go/internal/domain/salary"
	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and user domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAccountLocked):
		Forbidden(w, "Account is locked")
	case errors.Is(err, user.ErrPermissionRequired):
		Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out today")
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, "No punch in recorded for today")
	case errors.Is(err, attendance.ErrPunchTooSoon):
		BadRequest(w, "Punch out must come after punch in", nil)
	case errors.Is(err, attendance.ErrOutsideZone):
		Forbidden(w, "You are outside every allowed punch zone")
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrPolicyNotFound):
		NotFound(w, "Attendance settings are not configured")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Status is not an allowed value", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDayCount):
		BadRequest(w, "Day count does not match the date range", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryLocked):
		Conflict(w, "Salary record is paid and locked")
	case errors.Is(err, salary.ErrAlreadyPaid):
		Conflict(w, "Salary record is already paid")

	// Notification domain errors
	case errors.Is(err, bell.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
