package payslip

import "context"

// PayslipRepository defines data access methods for payslips. The uniqueness
// of (employee_id, month_year) is enforced by the storage constraint, not by
// ExistsForPeriod: Create must translate a constraint rejection into
// ErrPayslipExistsForPeriod even when the prior existence check passed.
type PayslipRepository interface {
	Create(ctx context.Context, p Payslip) (Payslip, error)
	ExistsForPeriod(ctx context.Context, employeeID, monthYear string) (bool, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, error)
}
