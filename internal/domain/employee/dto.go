package employee

import (
	"github.com/shopspring/decimal"

	"github.com/nexhr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	EmployeeCode     string  `json:"employee_code"`
	Name             string  `json:"name"`
	Department       *string `json:"department"`
	OfficialPhone    *string `json:"official_phone"`
	PersonalPhone    *string `json:"personal_phone"`
	DateOfJoining    *string `json:"date_of_joining"`
	BaseSalary       *string `json:"base_salary"`
	AttendancePolicy string  `json:"attendance_policy"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code must look like EMP001"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be YYYY-MM-DD"})
		}
	}
	if r.BaseSalary != nil {
		if d, err := decimal.NewFromString(*r.BaseSalary); err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be a non-negative number"})
		}
	}
	if r.AttendancePolicy != "" &&
		r.AttendancePolicy != string(AttendancePolicyGeofenced) &&
		r.AttendancePolicy != string(AttendancePolicyAnywhere) {
		errs = append(errs, validator.ValidationError{Field: "attendance_policy", Message: "attendance_policy must be GEOFENCED or ANYWHERE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	Name             *string `json:"name"`
	Department       *string `json:"department"`
	OfficialPhone    *string `json:"official_phone"`
	PersonalPhone    *string `json:"personal_phone"`
	DateOfJoining    *string `json:"date_of_joining"`
	BaseSalary       *string `json:"base_salary"`
	AttendancePolicy *string `json:"attendance_policy"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be YYYY-MM-DD"})
		}
	}
	if r.BaseSalary != nil {
		if d, err := decimal.NewFromString(*r.BaseSalary); err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be a non-negative number"})
		}
	}
	if r.AttendancePolicy != nil &&
		*r.AttendancePolicy != string(AttendancePolicyGeofenced) &&
		*r.AttendancePolicy != string(AttendancePolicyAnywhere) {
		errs = append(errs, validator.ValidationError{Field: "attendance_policy", Message: "attendance_policy must be GEOFENCED or ANYWHERE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	Name             string  `json:"name"`
	Email            *string `json:"email,omitempty"`
	Department       *string `json:"department,omitempty"`
	OfficialPhone    *string `json:"official_phone,omitempty"`
	PersonalPhone    *string `json:"personal_phone,omitempty"`
	DateOfJoining    *string `json:"date_of_joining,omitempty"`
	BaseSalary       *string `json:"base_salary,omitempty"`
	AttendancePolicy string  `json:"attendance_policy"`
}
