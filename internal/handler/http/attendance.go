package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MyMonth(w http.ResponseWriter, r *http.Request)
	EmployeeMonth(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	SaveSettings(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.MarkPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// MyMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyMonth(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ResolveMyMonth(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// EmployeeMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeMonth(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := h.attendanceService.ResolveMonth(r.Context(), query.Get("employee_id"), query.Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdatePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.attendanceService.UpdatePunch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record updated", nil)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeletePunch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// GetSettings implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.GetPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// SaveSettings implements AttendanceHandler.
func (h *attendanceHandlerImpl) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req attendance.SavePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.SavePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance settings saved", resp)
}
