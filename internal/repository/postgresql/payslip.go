package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/ats-hr/payslip-backend-go/internal/domain/payslip"
	"github.com/ats-hr/payslip-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `payslip_id, employee_id, employee_name, employee_email, month_year,
	designation, office_location, employment_type, date_of_joining, working_days,
	bank_name, pan_no, bank_account_no, pf_no, uan_no, esic_no,
	basic_salary, hra, other_allowance, professional_tax, tds, provident_fund,
	lwp, other_deduction, net_salary, status`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	err := row.Scan(
		&p.PayslipID, &p.EmployeeID, &p.EmployeeName, &p.EmployeeEmail, &p.MonthYear,
		&p.Designation, &p.OfficeLocation, &p.EmploymentType, &p.DateOfJoining, &p.WorkingDays,
		&p.BankName, &p.PanNo, &p.BankAccountNo, &p.PfNo, &p.UanNo, &p.EsicNo,
		&p.BasicSalary, &p.HRA, &p.OtherAllowance, &p.ProfessionalTax, &p.TDS, &p.ProvidentFund,
		&p.LWP, &p.OtherDeduction, &p.NetSalary, &p.Status,
	)
	return p, err
}

func (r *payslipRepository) Create(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (` + payslipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING ` + payslipColumns

	created, err := scanPayslip(q.QueryRow(ctx, query,
		p.PayslipID, p.EmployeeID, p.EmployeeName, p.EmployeeEmail, p.MonthYear,
		p.Designation, p.OfficeLocation, p.EmploymentType, p.DateOfJoining, p.WorkingDays,
		p.BankName, p.PanNo, p.BankAccountNo, p.PfNo, p.UanNo, p.EsicNo,
		p.BasicSalary, p.HRA, p.OtherAllowance, p.ProfessionalTax, p.TDS, p.ProvidentFund,
		p.LWP, p.OtherDeduction, p.NetSalary, p.Status,
	))
	if err != nil {
		// The unique constraint is the authoritative duplicate guard; a
		// rejection here can happen even after ExistsForPeriod returned false.
		if strings.Contains(err.Error(), "unique_employee_month_year") {
			return payslip.Payslip{}, payslip.ErrPayslipExistsForPeriod
		}
		if strings.Contains(err.Error(), "payslips_pkey") {
			return payslip.Payslip{}, payslip.ErrPayslipIDConflict
		}
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *payslipRepository) ExistsForPeriod(ctx context.Context, employeeID, monthYear string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payslips WHERE employee_id = $1 AND month_year = $2)`,
		employeeID, monthYear,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payslip existence: %w", err)
	}

	return exists, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE payslip_id = $1`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips`

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(employee_id ILIKE $%d OR employee_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM to_date(month_year, 'FMMonth YYYY')) = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM to_date(month_year, 'FMMonth YYYY')) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY to_date(month_year, 'FMMonth YYYY') DESC, employee_id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payslips: %w", err)
	}

	return payslips, nil
}
