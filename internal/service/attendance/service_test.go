package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/hrms-backend-go/internal/domain/attendance"
	"github.com/nexhr/hrms-backend-go/internal/domain/audit"
	"github.com/nexhr/hrms-backend-go/internal/domain/employee"
	"github.com/nexhr/hrms-backend-go/internal/domain/holiday"
	"github.com/nexhr/hrms-backend-go/internal/domain/leave"
	"github.com/nexhr/hrms-backend-go/internal/domain/user"
	"github.com/nexhr/hrms-backend-go/internal/fixtures"
	"log/slog"
)

// ---------- fakes ----------

type fakePunchRepo struct {
	punches map[string]attendance.Punch // keyed by date
	nextID  int
}

func newFakePunchRepo() *fakePunchRepo {
	return &fakePunchRepo{punches: map[string]attendance.Punch{}}
}

func (f *fakePunchRepo) PunchIn(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	if _, ok := f.punches[p.Date]; ok {
		return attendance.Punch{}, attendance.ErrAlreadyPunchedIn
	}
	f.nextID++
	p.ID = p.Date
	f.punches[p.Date] = p
	return p, nil
}

func (f *fakePunchRepo) PunchOut(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	existing, ok := f.punches[p.Date]
	if !ok || existing.ClockOut != nil {
		return attendance.Punch{}, attendance.ErrAlreadyPunchedOut
	}
	f.punches[p.Date] = p
	return p, nil
}

func (f *fakePunchRepo) GetByID(ctx context.Context, id, companyID string) (attendance.Punch, error) {
	for _, p := range f.punches {
		if p.ID == id {
			return p, nil
		}
	}
	return attendance.Punch{}, attendance.ErrPunchNotFound
}

func (f *fakePunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date, companyID string) (*attendance.Punch, error) {
	p, ok := f.punches[date]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePunchRepo) ListByMonth(ctx context.Context, employeeID, month, companyID string) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range f.punches {
		if len(p.Date) >= 7 && p.Date[:7] == month {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) Update(ctx context.Context, p attendance.Punch) error {
	for date, existing := range f.punches {
		if existing.ID == p.ID {
			f.punches[date] = p
			return nil
		}
	}
	return attendance.ErrPunchNotFound
}

func (f *fakePunchRepo) Delete(ctx context.Context, id, companyID string) error {
	for date, existing := range f.punches {
		if existing.ID == id {
			delete(f.punches, date)
			return nil
		}
	}
	return attendance.ErrPunchNotFound
}

type fakePolicyRepo struct {
	policy *attendance.Policy
}

func (f *fakePolicyRepo) Get(ctx context.Context, companyID string) (attendance.Policy, error) {
	if f.policy == nil {
		return attendance.Policy{}, attendance.ErrPolicyNotFound
	}
	return *f.policy, nil
}

func (f *fakePolicyRepo) Upsert(ctx context.Context, p attendance.Policy) (attendance.Policy, error) {
	p.ID = "policy-1"
	f.policy = &p
	return p, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id, companyID string) error {
	delete(f.employees, id)
	return nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) ListByMonth(ctx context.Context, companyID, month string) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if len(h.Date) >= 7 && h.Date[:7] == month {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id, companyID string) error {
	return nil
}

type fakeLeaveRepo struct {
	requests []leave.Request
}

func (f *fakeLeaveRepo) Create(ctx context.Context, r leave.Request) (leave.Request, error) {
	f.requests = append(f.requests, r)
	return r, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id, companyID string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]leave.Request, error) {
	return f.requests, nil
}

func (f *fakeLeaveRepo) ListPending(ctx context.Context, companyID string) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlappingMonth(ctx context.Context, employeeID, month, companyID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range f.requests {
		if r.Status == leave.StatusApproved && r.FromDate <= month+"-31" && r.ToDate >= month+"-01" {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, r leave.Request) error {
	return nil
}

type fakeAuditRepo struct {
	entries []audit.Entry
}

func (f *fakeAuditRepo) Insert(ctx context.Context, e audit.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

// ---------- harness ----------

type harness struct {
	svc       *AttendanceServiceImpl
	punches   *fakePunchRepo
	policies  *fakePolicyRepo
	employees *fakeEmployeeRepo
	holidays  *fakeHolidayRepo
	leaves    *fakeLeaveRepo
	audits    *fakeAuditRepo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	policy := fixtures.DefaultAttendancePolicy("company-1")
	policy.Zones = fixtures.DefaultZones()

	h := &harness{
		punches:   newFakePunchRepo(),
		policies:  &fakePolicyRepo{policy: &policy},
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		holidays:  &fakeHolidayRepo{},
		leaves:    &fakeLeaveRepo{},
		audits:    &fakeAuditRepo{},
	}
	h.employees.employees["emp-1"] = employee.Employee{
		ID:               "emp-1",
		UserID:           "user-1",
		CompanyID:        "company-1",
		EmployeeCode:     "EMP001",
		Name:             "Asha Verma",
		AttendancePolicy: employee.AttendancePolicyGeofenced,
	}

	svc := NewAttendanceService(
		h.punches, h.policies, h.employees, h.holidays, h.leaves, h.audits,
		loc, slog.Default(),
	)
	h.svc = svc.(*AttendanceServiceImpl)
	return h
}

func (h *harness) at(t *testing.T, value string) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	h.svc.now = func() time.Time { return parsed }
}

func authedContext(t *testing.T, role user.Role, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id":    "user-1",
		"email":      "asha@example.com",
		"company_id": "company-1",
		"role":       string(role),
		"type":       "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func markReq(lat, lng float64, direction attendance.PunchDirection) attendance.MarkPunchRequest {
	return attendance.MarkPunchRequest{Direction: direction, Latitude: &lat, Longitude: &lng}
}

// ---------- tests ----------

func TestMarkPunchInThenOut(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	h.at(t, "2025-07-01 09:15")
	resp, err := h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "09:15", *resp.ClockIn)
	assert.Equal(t, "2025-07-01", resp.Date)
	assert.Nil(t, resp.ClockOut)

	h.at(t, "2025-07-01 18:05")
	resp, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionOut))
	require.NoError(t, err)
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, "18:05", *resp.ClockOut)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, "08:50", *resp.TotalHours)
}

func TestMarkPunchStateMachine(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")
	h.at(t, "2025-07-01 09:15")

	_, err := h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionOut))
	assert.ErrorIs(t, err, attendance.ErrNotPunchedIn)

	_, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	_, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)

	// Same-minute punch out is rejected.
	_, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionOut))
	assert.ErrorIs(t, err, attendance.ErrPunchTooSoon)

	h.at(t, "2025-07-01 18:00")
	_, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionOut))
	require.NoError(t, err)

	h.at(t, "2025-07-01 18:30")
	_, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionOut))
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestMarkPunchGeofence(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")
	h.at(t, "2025-07-01 09:15")

	// Roughly 5 km away from the only zone.
	_, err := h.svc.MarkPunch(ctx, markReq(28.66, 77.21, attendance.DirectionIn))
	assert.ErrorIs(t, err, attendance.ErrOutsideZone)

	// ANYWHERE employees skip the check.
	emp := h.employees.employees["emp-1"]
	emp.AttendancePolicy = employee.AttendancePolicyAnywhere
	h.employees.employees["emp-1"] = emp

	_, err = h.svc.MarkPunch(ctx, markReq(28.66, 77.21, attendance.DirectionIn))
	assert.NoError(t, err)
}

func TestMarkPunchNoZonesConfigured(t *testing.T) {
	h := newHarness(t)
	h.policies.policy.Zones = nil
	ctx := authedContext(t, user.RoleEmployee, "emp-1")
	h.at(t, "2025-07-01 09:15")

	_, err := h.svc.MarkPunch(ctx, markReq(12.97, 77.59, attendance.DirectionIn))
	assert.NoError(t, err)
}

func TestMarkPunchValidation(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")
	h.at(t, "2025-07-01 09:15")

	_, err := h.svc.MarkPunch(ctx, attendance.MarkPunchRequest{Direction: attendance.DirectionIn})
	assert.Error(t, err)
}

func TestTodayReturnsNilWithoutPunch(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")
	h.at(t, "2025-07-01 10:00")

	resp, err := h.svc.Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	resp, err = h.svc.Today(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "2025-07-01", resp.Date)
}

func TestResolveMyMonthWiring(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	h.holidays.holidays = append(h.holidays.holidays, holiday.Holiday{
		ID: "hol-1", CompanyID: "company-1", Date: "2025-07-15", Name: "Founders Day",
	})
	// Approved paid leave that starts in June and spills into July.
	h.leaves.requests = append(h.leaves.requests, leave.Request{
		ID: "leave-1", EmployeeID: "emp-1", CompanyID: "company-1",
		FromDate: "2025-06-30", ToDate: "2025-07-02", Days: 3,
		IsPaid: true, Status: leave.StatusApproved,
	})

	h.at(t, "2025-07-03 09:15")
	_, err := h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	month, err := h.svc.ResolveMyMonth(ctx, "2025-07")
	require.NoError(t, err)
	require.Len(t, month.Rows, 31)

	assert.Equal(t, attendance.StatusPaidLeave, month.Rows[0].Status)
	assert.Equal(t, attendance.StatusPaidLeave, month.Rows[1].Status)
	assert.Equal(t, attendance.StatusPresent, month.Rows[2].Status)
	assert.Equal(t, attendance.StatusHoliday, month.Rows[14].Status)
	assert.Equal(t, attendance.StatusAbsent, month.Rows[3].Status)
}

func TestResolveMyMonthRequiresValidMonth(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	_, err := h.svc.ResolveMyMonth(ctx, "July 2025")
	assert.Error(t, err)
}

func TestResolveMonthUnknownEmployee(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleAdmin, "")

	_, err := h.svc.ResolveMonth(ctx, "emp-missing", "2025-07")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestResolveMonthMissingPolicyWithPunches(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleEmployee, "emp-1")

	h.at(t, "2025-07-03 09:15")
	_, err := h.svc.MarkPunch(ctx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	h.policies.policy = nil
	_, err = h.svc.ResolveMyMonth(ctx, "2025-07")
	assert.ErrorIs(t, err, attendance.ErrPolicyNotFound)
}

func TestUpdatePunchRecomputesTotalHours(t *testing.T) {
	h := newHarness(t)
	empCtx := authedContext(t, user.RoleEmployee, "emp-1")
	adminCtx := authedContext(t, user.RoleAdmin, "")

	h.at(t, "2025-07-01 09:15")
	created, err := h.svc.MarkPunch(empCtx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	clockOut := "17:45"
	err = h.svc.UpdatePunch(adminCtx, attendance.UpdatePunchRequest{ID: created.ID, ClockOut: &clockOut})
	require.NoError(t, err)

	stored := h.punches.punches["2025-07-01"]
	require.NotNil(t, stored.TotalHours)
	assert.Equal(t, "08:30", *stored.TotalHours)
	assert.NotEmpty(t, h.audits.entries)
}

func TestUpdatePunchRejectsInvertedClocks(t *testing.T) {
	h := newHarness(t)
	empCtx := authedContext(t, user.RoleEmployee, "emp-1")
	adminCtx := authedContext(t, user.RoleAdmin, "")

	h.at(t, "2025-07-01 09:15")
	created, err := h.svc.MarkPunch(empCtx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	clockOut := "08:00"
	err = h.svc.UpdatePunch(adminCtx, attendance.UpdatePunchRequest{ID: created.ID, ClockOut: &clockOut})
	assert.ErrorIs(t, err, attendance.ErrPunchTooSoon)
}

func TestSavePolicy(t *testing.T) {
	h := newHarness(t)
	ctx := authedContext(t, user.RoleAdmin, "")

	resp, err := h.svc.SavePolicy(ctx, attendance.SavePolicyRequest{
		OfficeStart:        "10:00",
		OfficeEnd:          "19:00",
		HalfDayTime:        "14:00",
		HalfDayDeduction:   true,
		SaturdayWorking:    true,
		LateMarginMinutes:  5,
		LateToHalfDayAfter: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.OfficeStart)
	assert.Equal(t, "company-1", h.policies.policy.CompanyID)

	_, err = h.svc.SavePolicy(ctx, attendance.SavePolicyRequest{
		OfficeStart: "10:00", OfficeEnd: "09:00", HalfDayTime: "14:00",
	})
	assert.Error(t, err)
}

func TestDeletePunch(t *testing.T) {
	h := newHarness(t)
	empCtx := authedContext(t, user.RoleEmployee, "emp-1")
	adminCtx := authedContext(t, user.RoleAdmin, "")

	h.at(t, "2025-07-01 09:15")
	created, err := h.svc.MarkPunch(empCtx, markReq(28.6139, 77.2090, attendance.DirectionIn))
	require.NoError(t, err)

	require.NoError(t, h.svc.DeletePunch(adminCtx, created.ID))
	assert.ErrorIs(t, h.svc.DeletePunch(adminCtx, created.ID), attendance.ErrPunchNotFound)
}
