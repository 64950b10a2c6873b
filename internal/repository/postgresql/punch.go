package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	id, employee_id, company_id, date, clock_in, clock_out,
	lat_in, lng_in, lat_out, lng_out, total_hours, status,
	created_at, updated_at
`

func scanPunch(row pgx.Row) (attendance.Punch, error) {
	var p attendance.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.ClockIn, &p.ClockOut,
		&p.LatIn, &p.LngIn, &p.LatOut, &p.LngOut, &p.TotalHours, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// PunchIn implements attendance.PunchRepository. The unique key on
// (employee_id, company_id, date) makes concurrent first punches race
// safe: exactly one insert wins, the rest see no returned row.
func (r *punchRepositoryImpl) PunchIn(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, company_id, date, clock_in, lat_in, lng_in, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, company_id, date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.CompanyID, p.Date, p.ClockIn, p.LatIn, p.LngIn, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Punch{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Punch{}, fmt.Errorf("failed to punch in: %w", err)
	}

	return p, nil
}

// PunchOut implements attendance.PunchRepository. The clock_out guard in
// the WHERE clause keeps a concurrent double punch-out from overwriting
// the first one.
func (r *punchRepositoryImpl) PunchOut(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $1, lat_out = $2, lng_out = $3, total_hours = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6 AND clock_in IS NOT NULL AND clock_out IS NULL
		RETURNING ` + punchColumns + `
	`

	updated, err := scanPunch(q.QueryRow(ctx, query,
		p.ClockOut, p.LatOut, p.LngOut, p.TotalHours, p.ID, p.CompanyID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Punch{}, attendance.ErrAlreadyPunchedOut
		}
		return attendance.Punch{}, fmt.Errorf("failed to punch out: %w", err)
	}

	return updated, nil
}

// GetByID implements attendance.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance_records
		WHERE id = $1 AND company_id = $2
	`

	p, err := scanPunch(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Punch{}, attendance.ErrPunchNotFound
		}
		return attendance.Punch{}, fmt.Errorf("failed to get record: %w", err)
	}
	return p, nil
}

// GetByEmployeeAndDate implements attendance.PunchRepository.
func (r *punchRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date, companyID string) (*attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	p, err := scanPunch(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by date: %w", err)
	}
	return &p, nil
}

// ListByMonth implements attendance.PunchRepository.
func (r *punchRepositoryImpl) ListByMonth(ctx context.Context, employeeID, month, companyID string) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND company_id = $2 AND date LIKE $3 || '-%'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

// Update implements attendance.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, p attendance.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $1, clock_out = $2, total_hours = $3, status = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	tag, err := q.Exec(ctx, query, p.ClockIn, p.ClockOut, p.TotalHours, p.Status, p.ID, p.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}
	return nil
}

// Delete implements attendance.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}
	return nil
}
