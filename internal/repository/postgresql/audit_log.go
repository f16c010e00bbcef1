package postgresql

import (
	"context"
	"fmt"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/audit"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

type auditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Record(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (user_id, action, entity_type, entity_id, performed_by, details)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.PerformedBy, entry.Details)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}
