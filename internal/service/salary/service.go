package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/domain/bell"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/salary"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
	"github.com/nexhr/hrms-backend-go/internal/pkg/utils"
	"github.com/nexhr/hrms-backend-go/internal/repository/postgresql"
)

// MonthResolver is the slice of the attendance service the salary
// computation depends on.
type MonthResolver interface {
	ResolveMonth(ctx context.Context, employeeID, month string) (attendance.MonthResponse, error)
}

type SalaryServiceImpl struct {
	db *database.DB
	salary.SalaryRepository
	attendance.PolicyRepository
	employee.EmployeeRepository

	resolver    MonthResolver
	bellService bell.BellService
	logger      *slog.Logger
}

func NewSalaryService(
	db *database.DB,
	salaryRepository salary.SalaryRepository,
	policyRepository attendance.PolicyRepository,
	employeeRepository employee.EmployeeRepository,
	resolver MonthResolver,
	bellService bell.BellService,
	logger *slog.Logger,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:                 db,
		SalaryRepository:   salaryRepository,
		PolicyRepository:   policyRepository,
		EmployeeRepository: employeeRepository,
		resolver:           resolver,
		bellService:        bellService,
		logger:             logger,
	}
}

// Compute implements salary.SalaryService.
func (s *SalaryServiceImpl) Compute(ctx context.Context, req salary.ComputeSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, identity.CompanyID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	base, err := decimal.NewFromString(req.BaseSalary)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("invalid base salary: %w", err)
	}

	month, err := s.resolver.ResolveMonth(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	halfDayDeduction := false
	if policy, err := s.PolicyRepository.Get(ctx, identity.CompanyID); err == nil {
		halfDayDeduction = policy.HalfDayDeduction
	} else if !errors.Is(err, attendance.ErrPolicyNotFound) {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	breakdown := ComputeBreakdown(base, month.Rows, halfDayDeduction)

	var saved salary.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.SalaryRepository.GetForUpdate(txCtx, req.EmployeeID, req.Month, identity.CompanyID)
		if err == nil {
			if existing.Status == salary.StatusPaid {
				return salary.ErrSalaryLocked
			}
		} else if !errors.Is(err, salary.ErrSalaryNotFound) {
			return err
		}

		saved, err = s.SalaryRepository.Upsert(txCtx, salary.Record{
			EmployeeID:       req.EmployeeID,
			CompanyID:        identity.CompanyID,
			Month:            req.Month,
			BaseSalary:       base,
			TotalWorkingDays: breakdown.TotalWorkingDays,
			AbsentDays:       breakdown.AbsentDays,
			Deduction:        breakdown.Deduction,
			FinalSalary:      breakdown.FinalSalary,
			Status:           salary.StatusPending,
			GeneratedBy:      &identity.UserID,
		})
		return err
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	s.notify(ctx, identity.CompanyID, employeeData.UserID,
		"Salary computed",
		fmt.Sprintf("Your salary for %s has been computed.", req.Month))

	return toSalaryResponse(saved), nil
}

// MarkPaid implements salary.SalaryService.
func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, id string) error {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	var record salary.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err = s.SalaryRepository.GetByIDForUpdate(txCtx, id, identity.CompanyID)
		if err != nil {
			return err
		}
		if record.Status == salary.StatusPaid {
			return salary.ErrAlreadyPaid
		}
		return s.SalaryRepository.MarkPaid(txCtx, id, identity.CompanyID)
	})
	if err != nil {
		return err
	}

	if employeeData, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID, identity.CompanyID); err == nil {
		s.notify(ctx, identity.CompanyID, employeeData.UserID,
			"Salary paid",
			fmt.Sprintf("Your salary for %s has been marked as paid.", record.Month))
	}
	return nil
}

// My implements salary.SalaryService.
func (s *SalaryServiceImpl) My(ctx context.Context, month string) (*salary.SalaryResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.EmployeeID == nil {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	record, err := s.SalaryRepository.GetByEmployeeAndMonth(ctx, *identity.EmployeeID, month, identity.CompanyID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := toSalaryResponse(record)
	return &resp, nil
}

// History implements salary.SalaryService.
func (s *SalaryServiceImpl) History(ctx context.Context) ([]salary.SalaryResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.EmployeeID == nil {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	records, err := s.SalaryRepository.ListByEmployee(ctx, *identity.EmployeeID, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	return toSalaryResponses(records), nil
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context, employeeID *string) ([]salary.SalaryResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.SalaryRepository.List(ctx, identity.CompanyID, employeeID)
	if err != nil {
		return nil, err
	}
	return toSalaryResponses(records), nil
}

// Delete implements salary.SalaryService. Paid records are immutable and
// cannot be deleted either.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.SalaryRepository.GetByIDForUpdate(txCtx, id, identity.CompanyID)
		if err != nil {
			return err
		}
		if record.Status == salary.StatusPaid {
			return salary.ErrSalaryLocked
		}
		return s.SalaryRepository.Delete(txCtx, id, identity.CompanyID)
	})
}

func (s *SalaryServiceImpl) notify(ctx context.Context, companyID, recipientID, title, body string) {
	if err := s.bellService.Notify(ctx, companyID, recipientID, title, body); err != nil {
		s.logger.Warn("notification write failed", "title", title, "error", err)
	}
}

func toSalaryResponse(r salary.Record) salary.SalaryResponse {
	resp := salary.SalaryResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		Month:            r.Month,
		BaseSalary:       r.BaseSalary.String(),
		TotalWorkingDays: r.TotalWorkingDays,
		AbsentDays:       r.AbsentDays.String(),
		Deduction:        r.Deduction.String(),
		FinalSalary:      r.FinalSalary.String(),
		Status:           string(r.Status),
	}
	if r.PaidAt != nil {
		paidAt := r.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}

func toSalaryResponses(records []salary.Record) []salary.SalaryResponse {
	responses := make([]salary.SalaryResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toSalaryResponse(r))
	}
	return responses
}
