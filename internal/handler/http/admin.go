package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/devstudio/checkin-backend-go/internal/domain/admin"
	"github.com/devstudio/checkin-backend-go/internal/handler/http/response"
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUserRole(w http.ResponseWriter, r *http.Request)
	SetUserExtraDays(w http.ResponseWriter, r *http.Request)
	ListCheckIns(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	DeleteCheckIn(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandlerImpl{
		adminService: adminService,
	}
}

// ListUsers implements AdminHandler.
func (h *adminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// UpdateUserRole implements AdminHandler.
func (h *adminHandlerImpl) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req admin.UpdateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateUserRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.adminService.UpdateUserRole(r.Context(), req); err != nil {
		slog.Error("UpdateUserRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated successfully", nil)
}

// SetUserExtraDays implements AdminHandler.
func (h *adminHandlerImpl) SetUserExtraDays(w http.ResponseWriter, r *http.Request) {
	var req admin.SetExtraDaysRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetUserExtraDays decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.adminService.SetUserExtraDays(r.Context(), req)
	if err != nil {
		slog.Error("SetUserExtraDays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Extra days updated successfully", updated)
}

// ListCheckIns implements AdminHandler. Filters by ?date= or ?year=&month=,
// across all users.
func (h *adminHandlerImpl) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}

		records, err := h.adminService.ListCheckInsByDate(r.Context(), date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, records)
		return
	}

	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "either date or year and month query parameters are required", nil)
		return
	}

	records, err := h.adminService.ListCheckInsByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// CheckIn implements AdminHandler.
func (h *adminHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req admin.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Admin check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.adminService.CheckInFor(r.Context(), req)
	if err != nil {
		slog.Error("Admin check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AdminHandler.
func (h *adminHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req admin.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Admin checkout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.adminService.CheckOutFor(r.Context(), req)
	if err != nil {
		slog.Error("Admin checkout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// DeleteCheckIn implements AdminHandler.
func (h *adminHandlerImpl) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.adminService.DeleteCheckIn(r.Context(), id); err != nil {
		slog.Error("Admin delete check-in error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-in deleted successfully", nil)
}

// MonthlyStats implements AdminHandler.
func (h *adminHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	stats, err := h.adminService.MonthlyStats(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
