package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hrms-backend-go/internal/domain/bell"
	"github.com/nexhr/hrms-backend-go/internal/handler/http/response"
)

type BellHandler interface {
	My(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type bellHandlerImpl struct {
	bellService bell.BellService
}

func NewBellHandler(bellService bell.BellService) BellHandler {
	return &bellHandlerImpl{bellService: bellService}
}

// My implements BellHandler.
func (h *bellHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	resp, err := h.bellService.My(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// MarkRead implements BellHandler.
func (h *bellHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.bellService.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
