package auth

const (
	RoleStaff         = "STAFF"
	RoleDeptAdmin     = "DEPT_ADMIN"
	RoleAsstRegistrar = "ASST_REGISTRAR"
	RoleSystemAdmin   = "SYSTEM_ADMIN"
)

const (
	PermLeaveSubmit = "leave.submit"
	PermLeaveRead   = "leave.read"
	PermLeaveReview = "leave.review"
	PermUsersManage = "users.manage"
	PermReportsRead = "reports.read"
)

var DefaultPermissions = []string{
	PermLeaveSubmit,
	PermLeaveRead,
	PermLeaveReview,
	PermUsersManage,
	PermReportsRead,
}

var RolePermissions = map[string][]string{
	RoleStaff: {
		PermLeaveSubmit,
		PermLeaveRead,
	},
	RoleDeptAdmin: {
		PermLeaveSubmit,
		PermLeaveRead,
		PermLeaveReview,
		PermReportsRead,
	},
	RoleAsstRegistrar: {
		PermLeaveRead,
		PermLeaveReview,
		PermReportsRead,
	},
	RoleSystemAdmin: {
		PermLeaveRead,
		PermUsersManage,
		PermReportsRead,
	},
}

func ValidRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}
