package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/handler/http/response"
	"github.com/devstudio/checkin-backend-go/internal/pkg/validator"
)

type CheckInHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type checkInHandlerImpl struct {
	checkInService checkin.CheckInService
}

func NewCheckInHandler(checkInService checkin.CheckInService) CheckInHandler {
	return &checkInHandlerImpl{
		checkInService: checkInService,
	}
}

// CheckIn implements CheckInHandler.
func (h *checkInHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkin.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.checkInService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements CheckInHandler.
func (h *checkInHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req checkin.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, userData, err := h.checkInService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"check_in": record,
		"user":     userData,
	})
}

// List implements CheckInHandler. Filters by ?date= or by ?year=&month=.
func (h *checkInHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}

		records, err := h.checkInService.ListByDate(r.Context(), date)
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

	records, err := h.checkInService.ListByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func yearMonthQuery(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
