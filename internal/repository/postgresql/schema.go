package postgresql

import (
	"context"
	"fmt"

	"github.com/ats-hr/payslip-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const createPayslipsTable = `
	CREATE TABLE IF NOT EXISTS payslips (
		payslip_id VARCHAR(20) PRIMARY KEY,
		employee_id TEXT NOT NULL,
		employee_name TEXT NOT NULL,
		employee_email TEXT NOT NULL,
		month_year TEXT NOT NULL,
		designation TEXT NOT NULL,
		office_location TEXT NOT NULL,
		employment_type TEXT NOT NULL,
		date_of_joining DATE NOT NULL,
		working_days INTEGER NOT NULL,
		bank_name TEXT NOT NULL,
		pan_no TEXT NOT NULL,
		bank_account_no TEXT NOT NULL,
		pf_no TEXT NOT NULL,
		uan_no TEXT NOT NULL,
		esic_no TEXT NOT NULL,
		basic_salary DECIMAL(10,2) NOT NULL,
		hra DECIMAL(10,2) NOT NULL,
		other_allowance DECIMAL(10,2) NOT NULL,
		professional_tax DECIMAL(10,2) NOT NULL,
		tds DECIMAL(10,2) NOT NULL,
		provident_fund DECIMAL(10,2) NOT NULL,
		lwp DECIMAL(10,2) NOT NULL,
		other_deduction DECIMAL(10,2) NOT NULL,
		net_salary DECIMAL(10,2) NOT NULL,
		status TEXT NOT NULL,
		CONSTRAINT unique_employee_month_year UNIQUE (employee_id, month_year)
	)
`

const seedDemoPayslip = `
	INSERT INTO payslips (
		payslip_id, employee_id, employee_name, employee_email, month_year,
		designation, office_location, employment_type, date_of_joining,
		working_days, bank_name, pan_no, bank_account_no, pf_no,
		uan_no, esic_no, basic_salary, hra, other_allowance,
		professional_tax, tds, provident_fund, lwp, other_deduction,
		net_salary, status
	) VALUES (
		'PSL-JANUARY2024-001', 'ATS0001', 'John Doe', 'john@example.com', 'January 2024',
		'Software Engineer', 'Hyderabad', 'Permanent', '2021-01-15',
		22, 'State Bank', 'ABCDE1234F', '1234567890', 'PF1234567890',
		'123456789012', 'ESIC12345678', 50000.00, 20000.00, 5000.00,
		200.00, 5000.00, 3000.00, 0.00, 0.00,
		62800.00, 'Generated'
	) ON CONFLICT DO NOTHING
`

// EnsureSchema creates the payslips table and seeds the demo row. Idempotent;
// it never drops existing data.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, db)

		if _, err := q.Exec(txCtx, createPayslipsTable); err != nil {
			return fmt.Errorf("create payslips table: %w", err)
		}
		if _, err := q.Exec(txCtx, seedDemoPayslip); err != nil {
			return fmt.Errorf("seed demo payslip: %w", err)
		}
		return nil
	})
}
