package model

import (
	"kmc/shared/constant"
	"kmc/shared/status"
	"time"
)

const (
	TableName  = "kmc_adms"
	EntityName = "admin"

	FieldEmail     = "email"
	FieldName      = "name"
	FieldPassword  = "password"
	FieldAdmYn     = "adm_yn"
	FieldAdmGrade  = "adm_grade"
	FieldUpdatedAt = "updated_at"

	GradeNone       = "0"
	GradeSuperAdmin = "9"
)

type Admin struct {
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Password  string    `db:"password"`
	AdmYn     string    `db:"adm_yn"`
	AdmGrade  string    `db:"adm_grade"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (a Admin) Approved() bool {
	return a.AdmYn == status.Yes
}

func (a Admin) Role() string {
	return RoleForGrade(a.AdmGrade)
}

// RoleForGrade maps adm_grade onto a role: 9 is superadmin, 1 through 8 manager,
// anything else staff.
func RoleForGrade(grade string) string {
	switch {
	case grade == GradeSuperAdmin:
		return constant.RoleSuperAdmin
	case len(grade) == 1 && grade >= "1" && grade <= "8":
		return constant.RoleManager
	default:
		return constant.RoleStaff
	}
}
