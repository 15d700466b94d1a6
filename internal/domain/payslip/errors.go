package payslip

import "errors"

var (
	ErrPayslipNotFound        = errors.New("payslip not found")
	ErrPayslipExistsForPeriod = errors.New("payslip already exists for this employee and month")
	ErrPayslipIDConflict      = errors.New("generated payslip id already exists")
)
