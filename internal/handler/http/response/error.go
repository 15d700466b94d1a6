package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ats-hr/payslip-backend-go/internal/domain/payslip"
	"github.com/ats-hr/payslip-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Validation and duplicate
// failures are the client's fault and carry their message; anything else is an
// unexpected storage failure that gets logged and never leaks details.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		Error(w, http.StatusBadRequest, first.Field+" "+first.Message)
		return
	}

	switch {
	case errors.Is(err, payslip.ErrPayslipExistsForPeriod):
		Error(w, http.StatusBadRequest, "Payslip already exists for this employee and month")
	case errors.Is(err, payslip.ErrPayslipIDConflict):
		Error(w, http.StatusBadRequest, "Generated payslip ID already exists, please retry")
	case errors.Is(err, payslip.ErrPayslipNotFound):
		Error(w, http.StatusNotFound, "Payslip not found")
	default:
		slog.ErrorContext(r.Context(), "unexpected storage failure",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
