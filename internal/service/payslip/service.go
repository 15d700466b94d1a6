package payslip

import (
	"context"
	"time"

	"github.com/ats-hr/payslip-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
)

type PayslipServiceImpl struct {
	payslipRepo payslip.PayslipRepository
}

func NewPayslipService(payslipRepo payslip.PayslipRepository) payslip.PayslipService {
	return &PayslipServiceImpl{payslipRepo: payslipRepo}
}

func (s *PayslipServiceImpl) Create(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	otherDeduction := decimal.Zero
	if req.OtherDeduction != nil {
		otherDeduction = *req.OtherDeduction
	}

	// Already validated, cannot fail
	dateOfJoining, _ := time.Parse("2006-01-02", *req.DateOfJoining)

	p := payslip.Payslip{
		PayslipID:       payslip.NewPayslipID(*req.MonthYear),
		EmployeeID:      *req.EmployeeID,
		EmployeeName:    *req.EmployeeName,
		EmployeeEmail:   *req.EmployeeEmail,
		MonthYear:       *req.MonthYear,
		Designation:     *req.Designation,
		OfficeLocation:  *req.OfficeLocation,
		EmploymentType:  *req.EmploymentType,
		DateOfJoining:   dateOfJoining,
		WorkingDays:     *req.WorkingDays,
		BankName:        *req.BankName,
		PanNo:           *req.PanNo,
		BankAccountNo:   *req.BankAccountNo,
		PfNo:            *req.PfNo,
		UanNo:           *req.UanNo,
		EsicNo:          *req.EsicNo,
		BasicSalary:     req.BasicSalary.Round(2),
		HRA:             req.HRA.Round(2),
		OtherAllowance:  req.OtherAllowance.Round(2),
		ProfessionalTax: req.ProfessionalTax.Round(2),
		TDS:             req.TDS.Round(2),
		ProvidentFund:   req.ProvidentFund.Round(2),
		LWP:             req.LWP.Round(2),
		OtherDeduction:  otherDeduction.Round(2),
		Status:          payslip.StatusGenerated,
	}
	p.NetSalary = payslip.NetSalary(
		p.BasicSalary, p.HRA, p.OtherAllowance,
		p.ProfessionalTax, p.TDS, p.ProvidentFund, p.LWP, p.OtherDeduction,
	)

	// Fast-path duplicate check. Not atomic with the insert; the storage
	// unique constraint remains the authoritative guard for the race.
	exists, err := s.payslipRepo.ExistsForPeriod(ctx, p.EmployeeID, p.MonthYear)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if exists {
		return payslip.PayslipResponse{}, payslip.ErrPayslipExistsForPeriod
	}

	created, err := s.payslipRepo.Create(ctx, p)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return toResponse(created), nil
}

func (s *PayslipServiceImpl) GetByID(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return toResponse(p), nil
}

func (s *PayslipServiceImpl) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.PayslipResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payslips, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Always a JSON array, never null
	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}

func toResponse(p payslip.Payslip) payslip.PayslipResponse {
	return payslip.PayslipResponse{
		PayslipID:       p.PayslipID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		EmployeeEmail:   p.EmployeeEmail,
		MonthYear:       p.MonthYear,
		Designation:     p.Designation,
		OfficeLocation:  p.OfficeLocation,
		EmploymentType:  p.EmploymentType,
		DateOfJoining:   p.DateOfJoining.Format("2006-01-02"),
		WorkingDays:     p.WorkingDays,
		BankName:        p.BankName,
		PanNo:           p.PanNo,
		BankAccountNo:   p.BankAccountNo,
		PfNo:            p.PfNo,
		UanNo:           p.UanNo,
		EsicNo:          p.EsicNo,
		BasicSalary:     p.BasicSalary,
		HRA:             p.HRA,
		OtherAllowance:  p.OtherAllowance,
		ProfessionalTax: p.ProfessionalTax,
		TDS:             p.TDS,
		ProvidentFund:   p.ProvidentFund,
		LWP:             p.LWP,
		OtherDeduction:  p.OtherDeduction,
		NetSalary:       p.NetSalary,
		Status:          p.Status,
	}
}
