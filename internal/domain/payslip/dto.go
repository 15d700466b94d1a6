package payslip

import (
	"regexp"
	"strings"
	"time"

	"github.com/ats-hr/payslip-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	employeeIDRegex = regexp.MustCompile(`^ATS0[0-9]{3}$`)
	emailRegex      = regexp.MustCompile(`(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.(com|in|org|co\.in)$`)
	monthYearRegex  = regexp.MustCompile(`^(` + strings.Join(monthNames, "|") + `) [0-9]{4}$`)
	panRegex        = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	accountNoRegex  = regexp.MustCompile(`^[0-9]{10,18}$`)
	pfNoRegex       = regexp.MustCompile(`^[A-Z0-9]{12,22}$`)
	uanNoRegex      = regexp.MustCompile(`^[0-9]{12}$`)
	esicNoRegex     = regexp.MustCompile(`^[A-Z0-9]{10,17}$`)
)

// joiningWindowStart is the earliest accepted date_of_joining.
var joiningWindowStart = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

// CreatePayslipRequest carries the raw inbound record. Pointer fields
// distinguish an absent field from a zero value; other_deduction is the only
// optional field and defaults to zero.
type CreatePayslipRequest struct {
	EmployeeID      *string          `json:"employee_id"`
	EmployeeName    *string          `json:"employee_name"`
	EmployeeEmail   *string          `json:"employee_email"`
	MonthYear       *string          `json:"month_year"`
	Designation     *string          `json:"designation"`
	OfficeLocation  *string          `json:"office_location"`
	EmploymentType  *string          `json:"employment_type"`
	DateOfJoining   *string          `json:"date_of_joining"`
	WorkingDays     *int             `json:"working_days"`
	BankName        *string          `json:"bank_name"`
	PanNo           *string          `json:"pan_no"`
	BankAccountNo   *string          `json:"bank_account_no"`
	PfNo            *string          `json:"pf_no"`
	UanNo           *string          `json:"uan_no"`
	EsicNo          *string          `json:"esic_no"`
	BasicSalary     *decimal.Decimal `json:"basic_salary"`
	HRA             *decimal.Decimal `json:"hra"`
	OtherAllowance  *decimal.Decimal `json:"other_allowance"`
	ProfessionalTax *decimal.Decimal `json:"professional_tax"`
	TDS             *decimal.Decimal `json:"tds"`
	ProvidentFund   *decimal.Decimal `json:"provident_fund"`
	LWP             *decimal.Decimal `json:"lwp"`
	OtherDeduction  *decimal.Decimal `json:"other_deduction"`
}

type fieldCheck struct {
	field   string
	ok      func() bool
	message string
}

// Validate checks the request field by field in declaration order and reports
// only the first failure. Presence of every required field is verified before
// any format rule runs, so the format closures may dereference freely.
func (r *CreatePayslipRequest) Validate() error {
	required := []struct {
		field   string
		present bool
	}{
		{"employee_id", r.EmployeeID != nil},
		{"employee_name", r.EmployeeName != nil},
		{"employee_email", r.EmployeeEmail != nil},
		{"month_year", r.MonthYear != nil},
		{"designation", r.Designation != nil},
		{"office_location", r.OfficeLocation != nil},
		{"employment_type", r.EmploymentType != nil},
		{"date_of_joining", r.DateOfJoining != nil},
		{"working_days", r.WorkingDays != nil},
		{"bank_name", r.BankName != nil},
		{"pan_no", r.PanNo != nil},
		{"bank_account_no", r.BankAccountNo != nil},
		{"pf_no", r.PfNo != nil},
		{"uan_no", r.UanNo != nil},
		{"esic_no", r.EsicNo != nil},
		{"basic_salary", r.BasicSalary != nil},
		{"hra", r.HRA != nil},
		{"other_allowance", r.OtherAllowance != nil},
		{"professional_tax", r.ProfessionalTax != nil},
		{"tds", r.TDS != nil},
		{"provident_fund", r.ProvidentFund != nil},
		{"lwp", r.LWP != nil},
	}
	for _, f := range required {
		if !f.present {
			return fail(f.field, "is required")
		}
	}

	checks := []fieldCheck{
		{"employee_id", func() bool {
			return employeeIDRegex.MatchString(*r.EmployeeID) && *r.EmployeeID != "ATS0000"
		}, "must be ATS0 followed by three digits (ATS0000 is not allowed)"},
		{"employee_name", func() bool {
			return validator.IsValidPersonName(*r.EmployeeName)
		}, "must contain only letters with single spaces between words"},
		{"employee_email", func() bool {
			return emailRegex.MatchString(*r.EmployeeEmail)
		}, "must be a valid email ending in .com, .in, .org or .co.in"},
		{"month_year", func() bool {
			return monthYearRegex.MatchString(*r.MonthYear)
		}, `must be in "Month YYYY" format, e.g. "January 2024"`},
		{"designation", func() bool {
			return validator.IsInSlice(*r.Designation, Designations)
		}, "is not a recognized designation"},
		{"office_location", func() bool {
			return validator.IsInSlice(*r.OfficeLocation, OfficeLocations)
		}, "must be one of Hyderabad, Bangalore, Pune, Chennai or Delhi"},
		{"employment_type", func() bool {
			return validator.IsInSlice(*r.EmploymentType, EmploymentTypes)
		}, "must be one of Permanent, Contract, Temporary or Intern"},
		{"date_of_joining", func() bool {
			d, ok := validator.IsValidDate(*r.DateOfJoining)
			return ok && !d.Before(joiningWindowStart) && !d.After(time.Now())
		}, "must be a date between 2021-01-01 and today"},
		{"working_days", func() bool {
			return *r.WorkingDays >= 1 && *r.WorkingDays <= 31
		}, "must be between 1 and 31"},
		{"bank_name", func() bool {
			return validator.IsLettersAndSpaces(*r.BankName)
		}, "must contain only letters and spaces"},
		{"pan_no", func() bool {
			return panRegex.MatchString(*r.PanNo)
		}, "must be 5 uppercase letters, 4 digits and 1 uppercase letter"},
		{"bank_account_no", func() bool {
			return accountNoRegex.MatchString(*r.BankAccountNo)
		}, "must be 10 to 18 digits"},
		{"pf_no", func() bool {
			return pfNoRegex.MatchString(*r.PfNo)
		}, "must be 12 to 22 uppercase letters or digits"},
		{"uan_no", func() bool {
			return uanNoRegex.MatchString(*r.UanNo)
		}, "must be exactly 12 digits"},
		{"esic_no", func() bool {
			return esicNoRegex.MatchString(*r.EsicNo)
		}, "must be 10 to 17 uppercase letters or digits"},
		{"basic_salary", func() bool {
			return r.BasicSalary.IsPositive()
		}, "must be greater than zero"},
		{"hra", func() bool { return !r.HRA.IsNegative() }, "must not be negative"},
		{"other_allowance", func() bool { return !r.OtherAllowance.IsNegative() }, "must not be negative"},
		{"professional_tax", func() bool { return !r.ProfessionalTax.IsNegative() }, "must not be negative"},
		{"tds", func() bool { return !r.TDS.IsNegative() }, "must not be negative"},
		{"provident_fund", func() bool { return !r.ProvidentFund.IsNegative() }, "must not be negative"},
		{"lwp", func() bool { return !r.LWP.IsNegative() }, "must not be negative"},
		{"other_deduction", func() bool {
			return r.OtherDeduction == nil || !r.OtherDeduction.IsNegative()
		}, "must not be negative"},
	}
	for _, c := range checks {
		if !c.ok() {
			return fail(c.field, c.message)
		}
	}

	return nil
}

func fail(field, message string) error {
	return validator.ValidationErrors{{Field: field, Message: message}}
}

// PayslipFilter narrows history queries; all fields are optional and ANDed.
type PayslipFilter struct {
	Search *string
	Month  *int
	Year   *int
}

func (f *PayslipFilter) Validate() error {
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		return fail("month", "must be between 1 and 12")
	}
	if f.Year != nil && (*f.Year < 1000 || *f.Year > 9999) {
		return fail("year", "must be a 4-digit year")
	}
	return nil
}

type PayslipResponse struct {
	PayslipID       string          `json:"payslip_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	EmployeeEmail   string          `json:"employee_email"`
	MonthYear       string          `json:"month_year"`
	Designation     string          `json:"designation"`
	OfficeLocation  string          `json:"office_location"`
	EmploymentType  string          `json:"employment_type"`
	DateOfJoining   string          `json:"date_of_joining"`
	WorkingDays     int             `json:"working_days"`
	BankName        string          `json:"bank_name"`
	PanNo           string          `json:"pan_no"`
	BankAccountNo   string          `json:"bank_account_no"`
	PfNo            string          `json:"pf_no"`
	UanNo           string          `json:"uan_no"`
	EsicNo          string          `json:"esic_no"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	OtherAllowance  decimal.Decimal `json:"other_allowance"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	LWP             decimal.Decimal `json:"lwp"`
	OtherDeduction  decimal.Decimal `json:"other_deduction"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	Status          string          `json:"status"`
}
