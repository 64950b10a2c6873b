package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/leave"
	"github.com/nexhr/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Request implements LeaveHandler.
func (h *leaveHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request filed", resp)
}

// MyLeaves implements LeaveHandler.
func (h *leaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.MyLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Pending implements LeaveHandler.
func (h *leaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.Pending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.leaveService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+resp.Status, resp)
}
