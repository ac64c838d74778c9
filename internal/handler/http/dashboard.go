package http

import (
	"net/http"

	"github.com/peoplehub/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
)

type DashboardHandler interface {
	AdminStats(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	jwtService       jwt.Service
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(jwtService jwt.Service, dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		jwtService:       jwtService,
		dashboardService: dashboardService,
	}
}

// AdminStats implements DashboardHandler.
func (h *dashboardHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeStats implements DashboardHandler.
func (h *dashboardHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetEmployeeStats(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
