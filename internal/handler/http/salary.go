package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/salary"
	"github.com/nexhr/hrms-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// Compute implements SalaryHandler.
func (h *salaryHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req salary.ComputeSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.salaryService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary computed", resp)
}

// MarkPaid implements SalaryHandler.
func (h *salaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.MarkPaid(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary marked as paid", nil)
}

// My implements SalaryHandler.
func (h *salaryHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	resp, err := h.salaryService.My(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// History implements SalaryHandler.
func (h *salaryHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	resp, err := h.salaryService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements SalaryHandler.
func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	resp, err := h.salaryService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Delete implements SalaryHandler.
func (h *salaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary record deleted", nil)
}
