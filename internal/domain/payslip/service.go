package payslip

import "context"

// PayslipService defines business logic for payslip operations
type PayslipService interface {
	// Create validates the request, derives the net salary, generates the
	// payslip id and persists the record with status "Generated"
	Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)

	// GetByID retrieves a single payslip by its generated id
	GetByID(ctx context.Context, id string) (PayslipResponse, error)

	// List retrieves payslip history, newest period first
	List(ctx context.Context, filter PayslipFilter) ([]PayslipResponse, error)
}
