package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type policyRepositoryImpl struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) attendance.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

// Get implements attendance.PolicyRepository.
func (r *policyRepositoryImpl) Get(ctx context.Context, companyID string) (attendance.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, office_start, office_end, half_day_time,
			   half_day_deduction, saturday_working, late_margin_minutes,
			   grace_late_days, late_to_half_day_after, zones,
			   created_at, updated_at
		FROM attendance_policies
		WHERE company_id = $1
	`

	var p attendance.Policy
	var zones []byte
	err := q.QueryRow(ctx, query, companyID).Scan(
		&p.ID, &p.CompanyID, &p.OfficeStart, &p.OfficeEnd, &p.HalfDayTime,
		&p.HalfDayDeduction, &p.SaturdayWorking, &p.LateMarginMinutes,
		&p.GraceLateDays, &p.LateToHalfDayAfter, &zones,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Policy{}, attendance.ErrPolicyNotFound
		}
		return attendance.Policy{}, fmt.Errorf("failed to get policy: %w", err)
	}

	if len(zones) > 0 {
		if err := json.Unmarshal(zones, &p.Zones); err != nil {
			return attendance.Policy{}, fmt.Errorf("failed to decode zones: %w", err)
		}
	}
	return p, nil
}

// Upsert implements attendance.PolicyRepository. One policy row per
// tenant, keyed by company_id.
func (r *policyRepositoryImpl) Upsert(ctx context.Context, p attendance.Policy) (attendance.Policy, error) {
	q := GetQuerier(ctx, r.db)

	zones, err := json.Marshal(p.Zones)
	if err != nil {
		return attendance.Policy{}, fmt.Errorf("failed to encode zones: %w", err)
	}

	query := `
		INSERT INTO attendance_policies (
			company_id, office_start, office_end, half_day_time,
			half_day_deduction, saturday_working, late_margin_minutes,
			grace_late_days, late_to_half_day_after, zones
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id) DO UPDATE SET
			office_start = EXCLUDED.office_start,
			office_end = EXCLUDED.office_end,
			half_day_time = EXCLUDED.half_day_time,
			half_day_deduction = EXCLUDED.half_day_deduction,
			saturday_working = EXCLUDED.saturday_working,
			late_margin_minutes = EXCLUDED.late_margin_minutes,
			grace_late_days = EXCLUDED.grace_late_days,
			late_to_half_day_after = EXCLUDED.late_to_half_day_after,
			zones = EXCLUDED.zones,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		p.CompanyID, p.OfficeStart, p.OfficeEnd, p.HalfDayTime,
		p.HalfDayDeduction, p.SaturdayWorking, p.LateMarginMinutes,
		p.GraceLateDays, p.LateToHalfDayAfter, zones,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return attendance.Policy{}, fmt.Errorf("failed to upsert policy: %w", err)
	}

	return p, nil
}
