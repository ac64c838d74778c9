package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
)

type ProfileHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	UpdateMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	jwtService     jwt.Service
	profileService profile.ProfileService
}

func NewProfileHandler(jwtService jwt.Service, profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{
		jwtService:     jwtService,
		profileService: profileService,
	}
}

// GetMine implements ProfileHandler.
func (h *profileHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.GetMine(r.Context(), identity.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMine implements ProfileHandler.
func (h *profileHandlerImpl) UpdateMine(w http.ResponseWriter, r *http.Request) {
	identity, err := h.jwtService.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req profile.UpdateMyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode profile body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.UpdateMine(r.Context(), identity.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// List implements ProfileHandler.
func (h *profileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ProfileHandler.
func (h *profileHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "id")

	var req profile.AdminUpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode profile body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.profileService.Update(r.Context(), profileID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", nil)
}
