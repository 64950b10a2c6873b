package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/salary"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.company_id, s.month, s.base_salary,
	s.total_working_days, s.absent_days, s.deduction, s.final_salary,
	s.status, s.paid_at, s.generated_by, s.created_at, s.updated_at, e.name
`

func scanSalary(row pgx.Row) (salary.Record, error) {
	var rec salary.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Month, &rec.BaseSalary,
		&rec.TotalWorkingDays, &rec.AbsentDays, &rec.Deduction, &rec.FinalSalary,
		&rec.Status, &rec.PaidAt, &rec.GeneratedBy, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	return rec, err
}

// GetForUpdate implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetForUpdate(ctx context.Context, employeeID, month, companyID string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.month = $2 AND s.company_id = $3
		FOR UPDATE OF s
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, employeeID, month, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to lock salary record: %w", err)
	}
	return rec, nil
}

// GetByIDForUpdate implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string, companyID string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1 AND s.company_id = $2
		FOR UPDATE OF s
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to lock salary record: %w", err)
	}
	return rec, nil
}

// Upsert implements salary.SalaryRepository. Recomputations overwrite
// the PENDING row for the same (employee, month); the service holds the
// row lock and has already rejected PAID records.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (
			employee_id, company_id, month, base_salary, total_working_days,
			absent_days, deduction, final_salary, status, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, company_id, month) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			total_working_days = EXCLUDED.total_working_days,
			absent_days = EXCLUDED.absent_days,
			deduction = EXCLUDED.deduction,
			final_salary = EXCLUDED.final_salary,
			status = EXCLUDED.status,
			generated_by = EXCLUDED.generated_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.CompanyID, rec.Month, rec.BaseSalary, rec.TotalWorkingDays,
		rec.AbsentDays, rec.Deduction, rec.FinalSalary, rec.Status, rec.GeneratedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return rec, nil
}

// MarkPaid implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) MarkPaid(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET status = 'PAID', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark salary paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

// GetByEmployeeAndMonth implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID, month, companyID string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.month = $2 AND s.company_id = $3
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, employeeID, month, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return rec, nil
}

// ListByEmployee implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]salary.Record, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.company_id = $2
		ORDER BY s.month DESC
	`
	return r.list(ctx, query, employeeID, companyID)
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, companyID string, employeeID *string) ([]salary.Record, error) {
	if employeeID != nil {
		query := `
			SELECT ` + salaryColumns + `
			FROM salary_records s
			JOIN employees e ON e.id = s.employee_id
			WHERE s.company_id = $1 AND s.employee_id = $2
			ORDER BY s.month DESC, e.name
		`
		return r.list(ctx, query, companyID, *employeeID)
	}

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.company_id = $1
		ORDER BY s.month DESC, e.name
	`
	return r.list(ctx, query, companyID)
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}
	return nil
}

func (r *salaryRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		rec, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
