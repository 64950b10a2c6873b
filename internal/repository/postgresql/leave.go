package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/leave"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.company_id, l.type, l.from_date, l.to_date,
	l.days, l.is_paid, l.reason, l.status, l.rejection_reason, l.approved_by,
	l.created_at, l.updated_at, e.name
`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID, &req.Type, &req.FromDate, &req.ToDate,
		&req.Days, &req.IsPaid, &req.Reason, &req.Status, &req.RejectionReason, &req.ApprovedBy,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	return req, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, company_id, type, from_date, to_date,
			days, is_paid, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.CompanyID, req.Type, req.FromDate, req.ToDate,
		req.Days, req.IsPaid, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1 AND l.company_id = $2
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]leave.Request, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1 AND l.company_id = $2
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, employeeID, companyID)
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPending(ctx context.Context, companyID string) ([]leave.Request, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.company_id = $1 AND l.status = 'PENDING'
		ORDER BY l.created_at
	`
	return r.list(ctx, query, companyID)
}

// ListApprovedOverlappingMonth implements leave.LeaveRepository. A
// request overlaps the month when from_date lands on or before the last
// possible day and to_date on or after the first.
func (r *leaveRepositoryImpl) ListApprovedOverlappingMonth(ctx context.Context, employeeID, month, companyID string) ([]leave.Request, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1 AND l.company_id = $2 AND l.status = 'APPROVED'
		  AND l.from_date <= $3 || '-31'
		  AND l.to_date >= $3 || '-01'
		ORDER BY l.from_date
	`
	return r.list(ctx, query, employeeID, companyID, month)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, rejection_reason = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, req.RejectionReason, req.ApprovedBy, req.ID, req.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
