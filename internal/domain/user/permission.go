package user

type Permission string

const (
	// Attendance
	PermissionAttendanceMark     Permission = "attendance.mark"
	PermissionAttendanceViewOwn  Permission = "attendance.view_own"
	PermissionAttendanceViewAll  Permission = "attendance.view_all"
	PermissionAttendanceManage   Permission = "attendance.manage"
	PermissionAttendanceSettings Permission = "attendance.settings"

	// Holidays
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Salary
	PermissionSalaryViewOwn Permission = "salary.view_own"
	PermissionSalaryManage  Permission = "salary.manage"

	// Employees
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Bell notifications
	PermissionBellView Permission = "bell.view"
)

// RolePermissions maps roles to their capabilities. Authorization is
// decided once per request at the router boundary, never re-derived
// inside handlers.
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionAttendanceSettings,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionSalaryManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionBellView,
	},
	RoleAdmin: {
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionAttendanceSettings,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionSalaryManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionBellView,
	},
	RoleEmployee: {
		PermissionAttendanceMark,
		PermissionAttendanceViewOwn,
		PermissionHolidayView,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
		PermissionSalaryViewOwn,
		PermissionBellView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
