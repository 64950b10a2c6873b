package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/domain/audit"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/holiday"
	"github.com/nexhr/hrms-backend-go/internal/domain/leave"
	"github.com/nexhr/hrms-backend-go/internal/pkg/timeutil"
	"github.com/nexhr/hrms-backend-go/internal/pkg/utils"
	"github.com/nexhr/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.PunchRepository
	attendance.PolicyRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	leave.LeaveRepository
	audit.AuditRepository

	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

func NewAttendanceService(
	punchRepository attendance.PunchRepository,
	policyRepository attendance.PolicyRepository,
	employeeRepository employee.EmployeeRepository,
	holidayRepository holiday.HolidayRepository,
	leaveRepository leave.LeaveRepository,
	auditRepository audit.AuditRepository,
	loc *time.Location,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		PunchRepository:    punchRepository,
		PolicyRepository:   policyRepository,
		EmployeeRepository: employeeRepository,
		HolidayRepository:  holidayRepository,
		LeaveRepository:    leaveRepository,
		AuditRepository:    auditRepository,
		loc:                loc,
		logger:             logger,
		now:                time.Now,
	}
}

// MarkPunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkPunch(ctx context.Context, req attendance.MarkPunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if identity.EmployeeID == nil {
		return attendance.PunchResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	employeeID := *identity.EmployeeID

	nowLocal := a.now().In(a.loc)
	date := timeutil.DateOf(nowLocal, a.loc)
	clock := timeutil.ClockOf(nowLocal, a.loc)

	employeeData, err := a.EmployeeRepository.GetByID(ctx, employeeID, identity.CompanyID)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := a.checkGeofence(ctx, identity.CompanyID, employeeData, *req.Latitude, *req.Longitude); err != nil {
		return attendance.PunchResponse{}, err
	}

	if req.Direction == attendance.DirectionIn {
		created, err := a.PunchRepository.PunchIn(ctx, attendance.Punch{
			EmployeeID: employeeID,
			CompanyID:  identity.CompanyID,
			Date:       date,
			ClockIn:    &clock,
			LatIn:      req.Latitude,
			LngIn:      req.Longitude,
			Status:     attendance.StatusPresent,
		})
		if err != nil {
			return attendance.PunchResponse{}, err
		}
		return toPunchResponse(created), nil
	}

	existing, err := a.PunchRepository.GetByEmployeeAndDate(ctx, employeeID, date, identity.CompanyID)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if existing == nil || existing.ClockIn == nil {
		return attendance.PunchResponse{}, attendance.ErrNotPunchedIn
	}
	if existing.ClockOut != nil {
		return attendance.PunchResponse{}, attendance.ErrAlreadyPunchedOut
	}

	inMin, err := timeutil.ClockMinutes(*existing.ClockIn)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("stored clock in is invalid: %w", err)
	}
	outMin, _ := timeutil.ClockMinutes(clock)
	if outMin <= inMin {
		return attendance.PunchResponse{}, attendance.ErrPunchTooSoon
	}
	total := timeutil.FormatMinutes(outMin - inMin)

	updated := *existing
	updated.ClockOut = &clock
	updated.LatOut = req.Latitude
	updated.LngOut = req.Longitude
	updated.TotalHours = &total

	saved, err := a.PunchRepository.PunchOut(ctx, updated)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	return toPunchResponse(saved), nil
}

// checkGeofence rejects punches outside every configured zone. Employees
// on the ANYWHERE policy skip the check entirely, as do tenants with no
// zones configured.
func (a *AttendanceServiceImpl) checkGeofence(ctx context.Context, companyID string, employeeData employee.Employee, lat, lng float64) error {
	if employeeData.AttendancePolicy == employee.AttendancePolicyAnywhere {
		return nil
	}

	policy, err := a.PolicyRepository.Get(ctx, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrPolicyNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get attendance policy: %w", err)
	}
	if len(policy.Zones) == 0 {
		return nil
	}

	for _, zone := range policy.Zones {
		distance := utils.CalculateHaversineDistance(lat, lng, zone.Latitude, zone.Longitude)
		if distance <= zone.RadiusMeters {
			return nil
		}
	}
	return attendance.ErrOutsideZone
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (*attendance.PunchResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.EmployeeID == nil {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	date := timeutil.DateOf(a.now(), a.loc)
	punch, err := a.PunchRepository.GetByEmployeeAndDate(ctx, *identity.EmployeeID, date, identity.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's record: %w", err)
	}
	if punch == nil {
		return nil, nil
	}
	resp := toPunchResponse(*punch)
	return &resp, nil
}

// ResolveMyMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ResolveMyMonth(ctx context.Context, month string) (attendance.MonthResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return attendance.MonthResponse{}, err
	}
	if identity.EmployeeID == nil {
		return attendance.MonthResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	return a.resolve(ctx, *identity.EmployeeID, month, identity.CompanyID)
}

// ResolveMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ResolveMonth(ctx context.Context, employeeID, month string) (attendance.MonthResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return attendance.MonthResponse{}, err
	}
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID, identity.CompanyID); err != nil {
		return attendance.MonthResponse{}, err
	}
	return a.resolve(ctx, employeeID, month, identity.CompanyID)
}

// resolve gathers the month's facts and runs them through the resolver.
func (a *AttendanceServiceImpl) resolve(ctx context.Context, employeeID, month, companyID string) (attendance.MonthResponse, error) {
	if !validator.IsValidMonth(month) {
		return attendance.MonthResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "month must be YYYY-MM"},
		}
	}

	facts := MonthFacts{
		Month:       month,
		Holidays:    make(map[string]string),
		PaidLeave:   make(map[string]bool),
		UnpaidLeave: make(map[string]bool),
		Punches:     make(map[string]attendance.Punch),
	}

	policy, err := a.PolicyRepository.Get(ctx, companyID)
	if err == nil {
		facts.Policy = &policy
	} else if !errors.Is(err, attendance.ErrPolicyNotFound) {
		return attendance.MonthResponse{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	holidays, err := a.HolidayRepository.ListByMonth(ctx, companyID, month)
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	for _, h := range holidays {
		facts.Holidays[h.Date] = h.Name
	}

	leaves, err := a.LeaveRepository.ListApprovedOverlappingMonth(ctx, employeeID, month, companyID)
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	for _, l := range leaves {
		dates, err := timeutil.DatesBetween(l.FromDate, l.ToDate)
		if err != nil {
			return attendance.MonthResponse{}, fmt.Errorf("leave %s has invalid dates: %w", l.ID, err)
		}
		for _, d := range dates {
			if !strings.HasPrefix(d, month+"-") {
				continue
			}
			if l.IsPaid {
				facts.PaidLeave[d] = true
			} else {
				facts.UnpaidLeave[d] = true
			}
		}
	}

	punches, err := a.PunchRepository.ListByMonth(ctx, employeeID, month, companyID)
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}
	for _, p := range punches {
		facts.Punches[p.Date] = p
	}

	records, err := ResolveMonth(facts)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	resp := attendance.MonthResponse{Month: month, Rows: make([]attendance.DayRecordResponse, 0, len(records))}
	for _, rec := range records {
		resp.Rows = append(resp.Rows, attendance.DayRecordResponse{
			Date:         rec.Date,
			Status:       rec.Status,
			IsWorkingDay: rec.IsWorkingDay,
			HalfDay:      rec.HalfDay,
			Source:       rec.Source,
			ClockIn:      rec.ClockIn,
			ClockOut:     rec.ClockOut,
			TotalHours:   rec.TotalHours,
		})
	}
	return resp, nil
}

// UpdatePunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdatePunch(ctx context.Context, req attendance.UpdatePunchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	punch, err := a.PunchRepository.GetByID(ctx, req.ID, identity.CompanyID)
	if err != nil {
		return err
	}

	if req.ClockIn != nil {
		punch.ClockIn = req.ClockIn
	}
	if req.ClockOut != nil {
		punch.ClockOut = req.ClockOut
	}
	if req.Status != nil {
		punch.Status = *req.Status
	}

	punch.TotalHours = nil
	if punch.ClockIn != nil && punch.ClockOut != nil {
		inMin, err := timeutil.ClockMinutes(*punch.ClockIn)
		if err != nil {
			return fmt.Errorf("stored clock in is invalid: %w", err)
		}
		outMin, err := timeutil.ClockMinutes(*punch.ClockOut)
		if err != nil {
			return fmt.Errorf("stored clock out is invalid: %w", err)
		}
		if outMin <= inMin {
			return attendance.ErrPunchTooSoon
		}
		total := timeutil.FormatMinutes(outMin - inMin)
		punch.TotalHours = &total
	}

	if err := a.PunchRepository.Update(ctx, punch); err != nil {
		return err
	}

	a.audit(ctx, identity, "attendance.update", fmt.Sprintf("corrected record %s on %s", punch.ID, punch.Date))
	return nil
}

// DeletePunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeletePunch(ctx context.Context, id string) error {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if err := a.PunchRepository.Delete(ctx, id, identity.CompanyID); err != nil {
		return err
	}
	a.audit(ctx, identity, "attendance.delete", fmt.Sprintf("deleted record %s", id))
	return nil
}

// GetPolicy implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetPolicy(ctx context.Context) (attendance.PolicyResponse, error) {
	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return attendance.PolicyResponse{}, err
	}
	policy, err := a.PolicyRepository.Get(ctx, identity.CompanyID)
	if err != nil {
		return attendance.PolicyResponse{}, err
	}
	return toPolicyResponse(policy), nil
}

// SavePolicy implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SavePolicy(ctx context.Context, req attendance.SavePolicyRequest) (attendance.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PolicyResponse{}, err
	}

	identity, err := utils.IdentityFromContext(ctx)
	if err != nil {
		return attendance.PolicyResponse{}, err
	}

	saved, err := a.PolicyRepository.Upsert(ctx, attendance.Policy{
		CompanyID:          identity.CompanyID,
		OfficeStart:        req.OfficeStart,
		OfficeEnd:          req.OfficeEnd,
		HalfDayTime:        req.HalfDayTime,
		HalfDayDeduction:   req.HalfDayDeduction,
		SaturdayWorking:    req.SaturdayWorking,
		LateMarginMinutes:  req.LateMarginMinutes,
		GraceLateDays:      req.GraceLateDays,
		LateToHalfDayAfter: req.LateToHalfDayAfter,
		Zones:              req.Zones,
	})
	if err != nil {
		return attendance.PolicyResponse{}, err
	}

	a.audit(ctx, identity, "attendance.settings", "updated attendance settings")
	return toPolicyResponse(saved), nil
}

// audit writes an activity-log entry. Failures are logged and swallowed
// so they never fail the primary operation.
func (a *AttendanceServiceImpl) audit(ctx context.Context, identity utils.Identity, action, detail string) {
	err := a.AuditRepository.Insert(ctx, audit.Entry{
		CompanyID: identity.CompanyID,
		ActorID:   identity.UserID,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		a.logger.Warn("activity log write failed", "action", action, "error", err)
	}
}

func toPunchResponse(p attendance.Punch) attendance.PunchResponse {
	return attendance.PunchResponse{
		ID:         p.ID,
		Date:       p.Date,
		ClockIn:    p.ClockIn,
		ClockOut:   p.ClockOut,
		TotalHours: p.TotalHours,
		Status:     p.Status,
		LatIn:      p.LatIn,
		LngIn:      p.LngIn,
		LatOut:     p.LatOut,
		LngOut:     p.LngOut,
	}
}

func toPolicyResponse(p attendance.Policy) attendance.PolicyResponse {
	return attendance.PolicyResponse{
		OfficeStart:        p.OfficeStart,
		OfficeEnd:          p.OfficeEnd,
		HalfDayTime:        p.HalfDayTime,
		HalfDayDeduction:   p.HalfDayDeduction,
		SaturdayWorking:    p.SaturdayWorking,
		LateMarginMinutes:  p.LateMarginMinutes,
		GraceLateDays:      p.GraceLateDays,
		LateToHalfDayAfter: p.LateToHalfDayAfter,
		Zones:              p.Zones,
	}
}
