package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/response"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
)

// ReportHandler serves the per-advisor dashboard reports.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler with the provided service dependency.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Totals handles GET requests for an advisor's aggregate totals.
//
// Endpoint: GET /api/report/{userUid}/totals?as_of=YYYY-MM-DD
// Response: 200 OK with model.Totals
// Error: 400 Bad Request if as_of is invalid
// Error: 500 Internal Server Error if calculation fails
func (h *ReportHandler) Totals(w http.ResponseWriter, r *http.Request) {
	userUID := chi.URLParam(r, "userUid")

	asOf, err := parseAsOf(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	totals, err := h.reportService.GetTotals(userUID, asOf)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateTotals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, totals)
}

// Monthly handles GET requests for the gross fee percentage per month of one year.
// Only months with at least one operation appear in the response.
//
// Endpoint: GET /api/report/{userUid}/monthly?year=2024
// Response: 200 OK with model.GrossByMonth
// Error: 400 Bad Request if year is missing or invalid
// Error: 500 Internal Server Error if calculation fails
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	userUID := chi.URLParam(r, "userUid")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1900 || year > 9999 {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidYear.Error(), r.URL.Query().Get("year"))
		return
	}

	monthly, err := h.reportService.GetGrossByMonth(userUID, year)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateMonthly.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, monthly)
}

// CarteraActiva handles GET requests for the advisor's active portfolio.
//
// Endpoint: GET /api/report/{userUid}/cartera-activa
// Response: 200 OK with model.CarteraActiva
// Error: 500 Internal Server Error if calculation fails
func (h *ReportHandler) CarteraActiva(w http.ResponseWriter, r *http.Request) {
	userUID := chi.URLParam(r, "userUid")

	cartera, err := h.reportService.GetCarteraActiva(userUID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateCartera.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, cartera)
}

// OperationProfit handles GET requests for one operation's net profit after assigned expenses.
//
// Endpoint: GET /api/report/operation/{uuid}/profit?gastos=1500
// Response: 200 OK with model.OperationProfit
// Error: 400 Bad Request if gastos is not a non-negative number
// Error: 404 Not Found if operation not found
// Error: 500 Internal Server Error if calculation fails
func (h *ReportHandler) OperationProfit(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "uuid")

	gastos := 0.0
	if raw := r.URL.Query().Get("gastos"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAmount.Error(), raw)
			return
		}
		gastos = parsed
	}

	profit, err := h.reportService.GetOperationProfit(operationID, gastos)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCalculateProfit.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profit)
}
