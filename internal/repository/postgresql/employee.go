package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.company_id, e.employee_code, e.name, e.department,
	e.official_phone, e.personal_phone, e.date_of_joining, e.base_salary,
	e.attendance_policy, e.created_at, e.updated_at, u.email
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.EmployeeCode, &e.Name, &e.Department,
		&e.OfficialPhone, &e.PersonalPhone, &e.DateOfJoining, &e.BaseSalary,
		&e.AttendancePolicy, &e.CreatedAt, &e.UpdatedAt, &e.Email,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, company_id, employee_code, name, department,
			official_phone, personal_phone, date_of_joining, base_salary, attendance_policy
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.CompanyID,
		newEmployee.EmployeeCode,
		newEmployee.Name,
		newEmployee.Department,
		newEmployee.OfficialPhone,
		newEmployee.PersonalPhone,
		newEmployee.DateOfJoining,
		newEmployee.BaseSalary,
		newEmployee.AttendancePolicy,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1 AND e.company_id = $2
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.company_id = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, department = $2, official_phone = $3, personal_phone = $4,
			date_of_joining = $5, base_salary = $6, attendance_policy = $7, updated_at = NOW()
		WHERE id = $8 AND company_id = $9
	`

	tag, err := q.Exec(ctx, query,
		e.Name, e.Department, e.OfficialPhone, e.PersonalPhone,
		e.DateOfJoining, e.BaseSalary, e.AttendancePolicy,
		e.ID, e.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
