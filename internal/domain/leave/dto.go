package leave

import "github.com/nexhr/hrms-backend-go/internal/pkg/validator"

type CreateLeaveRequest struct {
	Type   string `json:"type"`
	From   string `json:"from"`
	To     string `json:"to"`
	Days   int    `json:"days"`
	IsPaid bool   `json:"is_paid"`
	Reason string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeCasual) && r.Type != string(TypeSick) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be CL or SL"})
	}
	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be YYYY-MM-DD"})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be YYYY-MM-DD"})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	ID              string  `json:"-"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be APPROVED or REJECTED"})
	}
	if r.Status == string(StatusRejected) && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{Field: "rejection_reason", Message: "rejection_reason is required when rejecting"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Type            string  `json:"type"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Days            int     `json:"days"`
	IsPaid          bool    `json:"is_paid"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
