package holiday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nexhr/hrms-backend-go/internal/domain/audit"
	"github.com/nexhr/hrms-backend-go/internal/domain/holiday"
	"github.com/nexhr/hrms-backend-go/internal/pkg/utils"
	"github.com/nexhr/hrms-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	audit.AuditRepository

	logger *slog.Logger
}

func NewHolidayService(holidayRepository holiday.HolidayRepository, auditRepository audit.AuditRepository, logger *slog.Logger) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepository,
		AuditRepository:   auditRepository,
		logger:            logger,
	}
}

// Create implements holiday.HolidayService.
func (h *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		CompanyID:   identity.CompanyID,
		Date:        req.Date,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	h.audit(ctx, identity, "holiday.create", fmt.Sprintf("added holiday %s on %s", created.Name, created.Date))
	return toHolidayResponse(created), nil
}

// ListByMonth implements holiday.HolidayService.
func (h *HolidayServiceImpl) ListByMonth(ctx context.Context, month string) ([]holiday.HolidayResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{
			{Field: "month", Message: "month must be YYYY-MM"},
		}
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	holidays, err := h.HolidayRepository.ListByMonth(ctx, identity.CompanyID, month)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hd := range holidays {
		responses = append(responses, toHolidayResponse(hd))
	}
	return responses, nil
}

// Delete implements holiday.HolidayService.
func (h *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if err := h.HolidayRepository.Delete(ctx, id, identity.CompanyID); err != nil {
		return err
	}
	h.audit(ctx, identity, "holiday.delete", fmt.Sprintf("removed holiday %s", id))
	return nil
}

func (h *HolidayServiceImpl) audit(ctx context.Context, identity utils.Identity, action, detail string) {
	err := h.AuditRepository.Insert(ctx, audit.Entry{
		CompanyID: identity.CompanyID,
		ActorID:   identity.UserID,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		h.logger.Warn("activity log write failed", "action", action, "error", err)
	}
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date,
		Name:        h.Name,
		Description: h.Description,
	}
}
