package postgresql_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ats-hr/payslip-backend-go/internal/domain/payslip"
	"github.com/ats-hr/payslip-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayslip(employeeID, monthYear string) payslip.Payslip {
	period := strings.ToUpper(strings.ReplaceAll(monthYear, " ", ""))
	return payslip.Payslip{
		PayslipID:       fmt.Sprintf("PSL-%s-%s", period, employeeID[len(employeeID)-3:]),
		EmployeeID:      employeeID,
		EmployeeName:    "John Doe",
		EmployeeEmail:   "john.doe@example.com",
		MonthYear:       monthYear,
		Designation:     "Software Engineer",
		OfficeLocation:  "Hyderabad",
		EmploymentType:  "Permanent",
		DateOfJoining:   time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
		WorkingDays:     22,
		BankName:        "State Bank",
		PanNo:           "ABCDE1234F",
		BankAccountNo:   "1234567890",
		PfNo:            "PF1234567890",
		UanNo:           "123456789012",
		EsicNo:          "ESIC12345678",
		BasicSalary:     decimal.RequireFromString("50000.00"),
		HRA:             decimal.RequireFromString("20000.00"),
		OtherAllowance:  decimal.RequireFromString("5000.00"),
		ProfessionalTax: decimal.RequireFromString("200.00"),
		TDS:             decimal.RequireFromString("5000.00"),
		ProvidentFund:   decimal.RequireFromString("3000.00"),
		LWP:             decimal.RequireFromString("0.00"),
		OtherDeduction:  decimal.RequireFromString("0.00"),
		NetSalary:       decimal.RequireFromString("62800.00"),
		Status:          payslip.StatusGenerated,
	}
}

func TestPayslipRepository_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	created, err := repo.Create(ctx, testPayslip("ATS0101", "January 2024"))
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, created.PayslipID)
	require.NoError(t, err)

	assert.Equal(t, created.PayslipID, fetched.PayslipID)
	assert.Equal(t, "ATS0101", fetched.EmployeeID)
	assert.Equal(t, "January 2024", fetched.MonthYear)
	assert.Equal(t, "2021-06-15", fetched.DateOfJoining.Format("2006-01-02"))
	assert.Equal(t, 22, fetched.WorkingDays)
	assert.True(t, decimal.RequireFromString("62800.00").Equal(fetched.NetSalary), "net = %s", fetched.NetSalary)
	assert.Equal(t, payslip.StatusGenerated, fetched.Status)
}

func TestPayslipRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	_, err := repo.GetByID(ctx, "PSL-NOPE-000")
	assert.ErrorIs(t, err, payslip.ErrPayslipNotFound)
}

func TestPayslipRepository_DuplicatePeriodRejected(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	_, err := repo.Create(ctx, testPayslip("ATS0102", "January 2024"))
	require.NoError(t, err)

	// Same natural key, different primary key
	second := testPayslip("ATS0102", "January 2024")
	second.PayslipID = "PSL-JANUARY2024-999"
	_, err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, payslip.ErrPayslipExistsForPeriod)

	assert.Equal(t, 1, countPayslipsForPeriod(t, ctx, "ATS0102", "January 2024"))
}

func TestPayslipRepository_IDConflictRejected(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	first := testPayslip("ATS0103", "January 2024")
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	// Different natural key, colliding primary key
	second := testPayslip("ATS0104", "February 2024")
	second.PayslipID = first.PayslipID
	_, err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, payslip.ErrPayslipIDConflict)
}

func TestPayslipRepository_ConcurrentDuplicateCreates(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := testPayslip("ATS0105", "March 2024")
			p.PayslipID = fmt.Sprintf("PSL-MARCH2024-%d", 100+i)
			_, errs[i] = repo.Create(ctx, p)
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case err == payslip.ErrPayslipExistsForPeriod:
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, duplicates)
	assert.Equal(t, 1, countPayslipsForPeriod(t, ctx, "ATS0105", "March 2024"))
}

func TestPayslipRepository_ExistsForPeriod(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	exists, err := repo.ExistsForPeriod(ctx, "ATS0106", "January 2024")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, testPayslip("ATS0106", "January 2024"))
	require.NoError(t, err)

	exists, err = repo.ExistsForPeriod(ctx, "ATS0106", "January 2024")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPayslipRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	// Deliberately inserted out of order; two employees share February 2024.
	seed := []struct {
		employeeID string
		monthYear  string
	}{
		{"ATS0202", "December 2023"},
		{"ATS0203", "February 2024"},
		{"ATS0201", "February 2024"},
		{"ATS0202", "January 2024"},
	}
	for _, s := range seed {
		_, err := repo.Create(ctx, testPayslip(s.employeeID, s.monthYear))
		require.NoError(t, err)
	}

	result, err := repo.List(ctx, payslip.PayslipFilter{})
	require.NoError(t, err)
	require.Len(t, result, 4)

	// Newest period first, then employee_id ascending within a period
	assert.Equal(t, "February 2024", result[0].MonthYear)
	assert.Equal(t, "ATS0201", result[0].EmployeeID)
	assert.Equal(t, "February 2024", result[1].MonthYear)
	assert.Equal(t, "ATS0203", result[1].EmployeeID)
	assert.Equal(t, "January 2024", result[2].MonthYear)
	assert.Equal(t, "December 2023", result[3].MonthYear)
}

func TestPayslipRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	truncatePayslips(t, ctx)

	repo := postgresql.NewPayslipRepository(db)

	jane := testPayslip("ATS0301", "January 2024")
	jane.EmployeeName = "Jane Smith"
	_, err := repo.Create(ctx, jane)
	require.NoError(t, err)

	_, err = repo.Create(ctx, testPayslip("ATS0302", "January 2024"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testPayslip("ATS0302", "February 2024"))
	require.NoError(t, err)

	t.Run("search by employee id", func(t *testing.T) {
		search := "ATS0301"
		result, err := repo.List(ctx, payslip.PayslipFilter{Search: &search})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "ATS0301", result[0].EmployeeID)
	})

	t.Run("search by name case insensitive", func(t *testing.T) {
		search := "jane"
		result, err := repo.List(ctx, payslip.PayslipFilter{Search: &search})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Jane Smith", result[0].EmployeeName)
	})

	t.Run("month filter", func(t *testing.T) {
		month := 2
		result, err := repo.List(ctx, payslip.PayslipFilter{Month: &month})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "February 2024", result[0].MonthYear)
	})

	t.Run("year filter", func(t *testing.T) {
		year := 2024
		result, err := repo.List(ctx, payslip.PayslipFilter{Year: &year})
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("combined filters", func(t *testing.T) {
		search := "ATS0302"
		month := 1
		year := 2024
		result, err := repo.List(ctx, payslip.PayslipFilter{Search: &search, Month: &month, Year: &year})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "ATS0302", result[0].EmployeeID)
		assert.Equal(t, "January 2024", result[0].MonthYear)
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		search := "ATS0999"
		result, err := repo.List(ctx, payslip.PayslipFilter{Search: &search})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
