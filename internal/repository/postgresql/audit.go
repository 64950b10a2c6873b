package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexhr/hrms-backend-go/internal/domain/audit"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Insert implements audit.AuditRepository.
func (r *auditRepositoryImpl) Insert(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activity_logs (id, company_id, actor_id, action, detail)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, e.ID, e.CompanyID, e.ActorID, e.Action, e.Detail); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return nil
}
