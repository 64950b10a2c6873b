package postgresql

import (
	"context"
	"fmt"

	"github.com/nexhr/hrms-backend-go/internal/domain/holiday"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (company_id, date, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.CompanyID, h.Date, h.Name, h.Description).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// ListByMonth implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListByMonth(ctx context.Context, companyID, month string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, date, name, description, created_at, updated_at
		FROM holidays
		WHERE company_id = $1 AND date LIKE $2 || '-%'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		err := rows.Scan(&h.ID, &h.CompanyID, &h.Date, &h.Name, &h.Description, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
