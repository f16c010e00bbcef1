package payslip

import (
	"context"
)

// PayslipService turns classified attendance into payslips and manages the
// payslip lifecycle. Batch generation is sequential and isolates per-employee
// failures; the returned slice is the subset that succeeded.
type PayslipService interface {
	// Generate computes and upserts payslips for one month, for all employees
	// with aggregated attendance or just the requested one.
	Generate(ctx context.Context, req GeneratePayslipsRequest) ([]PayslipResponse, error)

	// Upsert writes one externally computed payslip under the locking
	// discipline.
	Upsert(ctx context.Context, req UpsertPayslipRequest) (PayslipResponse, error)

	// Update applies a partial field update to one payslip.
	Update(ctx context.Context, req UpdatePayslipRequest) (PayslipResponse, error)

	// Get retrieves one payslip by id.
	Get(ctx context.Context, id string) (PayslipResponse, error)

	// List returns all payslips of a period.
	List(ctx context.Context, req ListPayslipsRequest) ([]PayslipResponse, error)

	// Release marks the payslip released, stamping actor and time. One-way.
	Release(ctx context.Context, id, actor string) (PayslipResponse, error)

	// Lock marks the payslip locked. One-way; only override writes may touch
	// it afterwards.
	Lock(ctx context.Context, id, actor string) (PayslipResponse, error)
}
