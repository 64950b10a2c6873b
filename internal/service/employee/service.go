package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexhr/hrms-backend-go/internal/domain/audit"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
	"github.com/nexhr/hrms-backend-go/internal/pkg/timeutil"
	"github.com/nexhr/hrms-backend-go/internal/pkg/utils"
	"github.com/nexhr/hrms-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	audit.AuditRepository

	logger *slog.Logger
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	auditRepository audit.AuditRepository,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		AuditRepository:    auditRepository,
		logger:             logger,
	}
}

// Create implements employee.EmployeeService. It provisions the login
// account and the directory entry in one transaction so a failed insert
// never leaves an orphaned user.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		CompanyID:        identity.CompanyID,
		EmployeeCode:     req.EmployeeCode,
		Name:             req.Name,
		Department:       req.Department,
		OfficialPhone:    req.OfficialPhone,
		PersonalPhone:    req.PersonalPhone,
		AttendancePolicy: employee.AttendancePolicyGeofenced,
	}
	if req.AttendancePolicy != "" {
		newEmployee.AttendancePolicy = employee.AttendancePolicy(req.AttendancePolicy)
	}
	if req.DateOfJoining != nil {
		joined, err := time.Parse(timeutil.DateLayout, *req.DateOfJoining)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid date of joining: %w", err)
		}
		newEmployee.DateOfJoining = &joined
	}
	if req.BaseSalary != nil {
		base, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid base salary: %w", err)
		}
		newEmployee.BaseSalary = &base
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newUser, err := e.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			CompanyID:    identity.CompanyID,
		})
		if err != nil {
			return err
		}

		newEmployee.UserID = newUser.ID
		created, err = e.EmployeeRepository.Create(txCtx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created.Email = &req.Email

	e.audit(ctx, identity, "employee.create", fmt.Sprintf("created employee %s (%s)", created.Name, created.EmployeeCode))
	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	employeeData, err := e.EmployeeRepository.GetByID(ctx, id, identity.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(employeeData), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := e.EmployeeRepository.List(ctx, identity.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	employeeData, err := e.EmployeeRepository.GetByID(ctx, req.ID, identity.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		employeeData.Name = *req.Name
	}
	if req.Department != nil {
		employeeData.Department = req.Department
	}
	if req.OfficialPhone != nil {
		employeeData.OfficialPhone = req.OfficialPhone
	}
	if req.PersonalPhone != nil {
		employeeData.PersonalPhone = req.PersonalPhone
	}
	if req.DateOfJoining != nil {
		joined, err := time.Parse(timeutil.DateLayout, *req.DateOfJoining)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid date of joining: %w", err)
		}
		employeeData.DateOfJoining = &joined
	}
	if req.BaseSalary != nil {
		base, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid base salary: %w", err)
		}
		employeeData.BaseSalary = &base
	}
	if req.AttendancePolicy != nil {
		employeeData.AttendancePolicy = employee.AttendancePolicy(*req.AttendancePolicy)
	}

	if err := e.EmployeeRepository.Update(ctx, employeeData); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e.audit(ctx, identity, "employee.update", fmt.Sprintf("updated employee %s", employeeData.ID))
	return toEmployeeResponse(employeeData), nil
}

// Delete implements employee.EmployeeService. The login account goes
// with the directory entry.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	employeeData, err := e.EmployeeRepository.GetByID(ctx, id, identity.CompanyID)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := e.EmployeeRepository.Delete(txCtx, id, identity.CompanyID); err != nil {
			return err
		}
		return e.UserRepository.Delete(txCtx, employeeData.UserID, identity.CompanyID)
	})
	if err != nil {
		return err
	}

	e.audit(ctx, identity, "employee.delete", fmt.Sprintf("deleted employee %s (%s)", employeeData.Name, employeeData.EmployeeCode))
	return nil
}

func (e *EmployeeServiceImpl) audit(ctx context.Context, identity utils.Identity, action, detail string) {
	err := e.AuditRepository.Insert(ctx, audit.Entry{
		CompanyID: identity.CompanyID,
		ActorID:   identity.UserID,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		e.logger.Warn("activity log write failed", "action", action, "error", err)
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		Name:             emp.Name,
		Email:            emp.Email,
		Department:       emp.Department,
		OfficialPhone:    emp.OfficialPhone,
		PersonalPhone:    emp.PersonalPhone,
		AttendancePolicy: string(emp.AttendancePolicy),
	}
	if emp.DateOfJoining != nil {
		joined := emp.DateOfJoining.Format(timeutil.DateLayout)
		resp.DateOfJoining = &joined
	}
	if emp.BaseSalary != nil {
		base := emp.BaseSalary.String()
		resp.BaseSalary = &base
	}
	return resp
}
