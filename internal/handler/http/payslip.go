package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ats-hr/payslip-backend-go/internal/domain/payslip"
	"github.com/ats-hr/payslip-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayslipHandler interface {
	// Create generates a payslip from the posted record
	Create(w http.ResponseWriter, r *http.Request)

	// GetByID returns a single payslip
	GetByID(w http.ResponseWriter, r *http.Request)

	// History returns payslips matching the optional search/month/year filters
	History(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payslip.CreatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.payslipService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, "Payslip generated successfully", result)
}

func (h *payslipHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "Payslip ID is required")
		return
	}

	result, err := h.payslipService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.OK(w, result)
}

func (h *payslipHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	var filter payslip.PayslipFilter

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "month must be a number")
			return
		}
		filter.Month = &month
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "year must be a number")
			return
		}
		filter.Year = &year
	}

	result, err := h.payslipService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.OK(w, result)
}
