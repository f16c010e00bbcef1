package payslip

import (
	"context"
)

// PayslipRepository persists payslip rows. The (user_id, month, year) unique
// key plus ON CONFLICT upserts are the only concurrency safeguard; there is
// no optimistic versioning beyond the is_locked gate.
type PayslipRepository interface {
	// GetByID retrieves one payslip.
	GetByID(ctx context.Context, id string) (Payslip, error)

	// GetByUserPeriod retrieves the payslip for (user, month, year).
	GetByUserPeriod(ctx context.Context, userID string, month, year int) (Payslip, error)

	// ListByPeriod returns all payslips for a (month, year), ordered by
	// employee name.
	ListByPeriod(ctx context.Context, month, year int) ([]Payslip, error)

	// Upsert inserts or updates the row keyed by (user_id, month, year).
	// A locked row rejects the write with ErrPayslipLocked unless override
	// is set; no column is mutated on rejection. Returns the stored row and
	// whether it was newly created.
	Upsert(ctx context.Context, p Payslip, override bool) (Payslip, bool, error)

	// UpdateFields applies a partial update. Identifier columns (payslip_id,
	// document_url, status, company_name, company_address, issue_date) keep
	// their stored value when the row is locked, so a partial payload never
	// blanks them.
	UpdateFields(ctx context.Context, req UpdatePayslipRequest) error

	// Release stamps status=released, released_at and released_by. One-way.
	Release(ctx context.Context, id, actor string) (Payslip, error)

	// Lock stamps status=locked, is_locked, locked_at and locked_by. One-way.
	Lock(ctx context.Context, id, actor string) (Payslip, error)
}
