package payslip

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusGenerated is the only payslip status. Payslips are create-once,
// read-many; no transition logic exists.
const StatusGenerated = "Generated"

// Payslip - one persisted record of computed pay for one employee for one
// month/year period. The natural key is (EmployeeID, MonthYear).
type Payslip struct {
	PayslipID       string
	EmployeeID      string
	EmployeeName    string
	EmployeeEmail   string
	MonthYear       string
	Designation     string
	OfficeLocation  string
	EmploymentType  string
	DateOfJoining   time.Time
	WorkingDays     int
	BankName        string
	PanNo           string
	BankAccountNo   string
	PfNo            string
	UanNo           string
	EsicNo          string
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	OtherAllowance  decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	ProvidentFund   decimal.Decimal
	LWP             decimal.Decimal
	OtherDeduction  decimal.Decimal
	NetSalary       decimal.Decimal
	Status          string
}

// NetSalary computes earnings minus deductions, rounded to two decimal places.
// Computed once at creation, immutable thereafter.
func NetSalary(basic, hra, otherAllowance, professionalTax, tds, providentFund, lwp, otherDeduction decimal.Decimal) decimal.Decimal {
	earnings := basic.Add(hra).Add(otherAllowance)
	deductions := professionalTax.Add(tds).Add(providentFund).Add(lwp).Add(otherDeduction)
	return earnings.Sub(deductions).Round(2)
}

// NewPayslipID builds identifiers like "PSL-JANUARY2024-473": the month_year
// uppercased with its space removed plus a random 3-digit suffix in [100,999].
// The suffix is not guaranteed unique; a primary-key collision on insert is
// surfaced as ErrPayslipIDConflict and is not retried automatically.
func NewPayslipID(monthYear string) string {
	period := strings.ToUpper(strings.ReplaceAll(monthYear, " ", ""))
	return fmt.Sprintf("PSL-%s-%d", period, rand.Intn(900)+100)
}
