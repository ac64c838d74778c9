package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
)

type PayrollHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	jwtService     jwt.Service
	payrollService payroll.PayrollService
}

func NewPayrollHandler(jwtService jwt.Service, payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		jwtService:     jwtService,
		payrollService: payrollService,
	}
}

// GetMine implements PayrollHandler.
func (h *payrollHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetMine(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PayrollHandler.
func (h *payrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode payroll body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Update(r.Context(), payrollID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated", result)
}
