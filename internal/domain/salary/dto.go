package salary

import (
	"github.com/shopspring/decimal"

	"github.com/nexhr/hrms-backend-go/internal/pkg/validator"
)

type ComputeSalaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	BaseSalary string `json:"base_salary"`
}

func (r *ComputeSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if d, err := decimal.NewFromString(r.BaseSalary); err != nil || d.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be a non-negative number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Month            string  `json:"month"`
	BaseSalary       string  `json:"base_salary"`
	TotalWorkingDays int     `json:"total_working_days"`
	AbsentDays       string  `json:"absent_days"`
	Deduction        string  `json:"deduction"`
	FinalSalary      string  `json:"final_salary"`
	Status           string  `json:"status"`
	PaidAt           *string `json:"paid_at,omitempty"`
}
