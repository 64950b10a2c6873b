package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nexhr/hrms-backend-go/internal/domain/bell"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/leave"
	"github.com/nexhr/hrms-backend-go/internal/pkg/timeutil"
	"github.com/nexhr/hrms-backend-go/internal/pkg/utils"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository

	bellService bell.BellService
	logger      *slog.Logger
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	bellService bell.BellService,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		bellService:        bellService,
		logger:             logger,
	}
}

// Request implements leave.LeaveService.
func (l *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if identity.EmployeeID == nil {
		return leave.LeaveResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	dates, err := timeutil.DatesBetween(req.From, req.To)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Days != len(dates) {
		return leave.LeaveResponse{}, leave.ErrInvalidDayCount
	}

	created, err := l.LeaveRepository.Create(ctx, leave.Request{
		EmployeeID: *identity.EmployeeID,
		CompanyID:  identity.CompanyID,
		Type:       leave.Type(req.Type),
		FromDate:   req.From,
		ToDate:     req.To,
		Days:       req.Days,
		IsPaid:     req.IsPaid,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// The tenant key doubles as the owning admin's user ID.
	l.notify(ctx, identity.CompanyID, identity.CompanyID,
		"Leave request",
		fmt.Sprintf("A new leave request was filed for %s to %s.", req.From, req.To))

	return toLeaveResponse(created), nil
}

// MyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) MyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.EmployeeID == nil {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	requests, err := l.LeaveRepository.ListByEmployee(ctx, *identity.EmployeeID, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(requests), nil
}

// Pending implements leave.LeaveService.
func (l *LeaveServiceImpl) Pending(ctx context.Context) ([]leave.LeaveResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRepository.ListPending(ctx, identity.CompanyID)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(requests), nil
}

// UpdateStatus implements leave.LeaveService. Only PENDING requests can
// transition; a processed request stays processed.
func (l *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.LeaveRepository.GetByID(ctx, req.ID, identity.CompanyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.Status(req.Status)
	request.ApprovedBy = &identity.UserID
	if request.Status == leave.StatusRejected {
		request.RejectionReason = req.RejectionReason
	}

	if err := l.LeaveRepository.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	if employeeData, err := l.EmployeeRepository.GetByID(ctx, request.EmployeeID, identity.CompanyID); err == nil {
		verdict := "approved"
		if request.Status == leave.StatusRejected {
			verdict = "rejected"
		}
		l.notify(ctx, identity.CompanyID, employeeData.UserID,
			"Leave request "+verdict,
			fmt.Sprintf("Your leave request for %s to %s was %s.", request.FromDate, request.ToDate, verdict))
	}

	return toLeaveResponse(request), nil
}

func (l *LeaveServiceImpl) notify(ctx context.Context, companyID, recipientID, title, body string) {
	if err := l.bellService.Notify(ctx, companyID, recipientID, title, body); err != nil {
		l.logger.Warn("notification write failed", "title", title, "error", err)
	}
}

func toLeaveResponse(r leave.Request) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		Type:            string(r.Type),
		From:            r.FromDate,
		To:              r.ToDate,
		Days:            r.Days,
		IsPaid:          r.IsPaid,
		Reason:          r.Reason,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
	}
}

func toLeaveResponses(requests []leave.Request) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toLeaveResponse(r))
	}
	return responses
}
