package audit

import "context"

// AuditLogRepository is the sink for audit entries.
type AuditLogRepository interface {
	Record(ctx context.Context, entry Entry) error
}
