package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/ats-hr/payslip-backend-go/internal/pkg/database"
	"github.com/ats-hr/payslip-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// setupTestDB connects once per test binary and guarantees the schema exists.
// Tests are skipped when no test database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	if testDB == nil {
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			t.Fatalf("failed to connect to test database: %v", err)
		}
		if err := postgresql.EnsureSchema(context.Background(), db); err != nil {
			t.Fatalf("failed to ensure schema: %v", err)
		}
		testDB = db
	}

	return testDB
}

func truncatePayslips(t *testing.T, ctx context.Context) {
	t.Helper()
	if _, err := testDB.Exec(ctx, "TRUNCATE TABLE payslips"); err != nil {
		t.Fatalf("failed to truncate payslips: %v", err)
	}
}

func countPayslipsForPeriod(t *testing.T, ctx context.Context, employeeID, monthYear string) int {
	t.Helper()
	var count int
	err := testDB.QueryRow(ctx,
		"SELECT COUNT(*) FROM payslips WHERE employee_id = $1 AND month_year = $2",
		employeeID, monthYear,
	).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count payslips: %v", err)
	}
	return count
}
