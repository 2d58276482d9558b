package session

import (
	"github.com/trezcool/mahudhurio/core"
)

type Role string

// Roles
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

var AllRoles = []Role{RoleStudent, RoleTeacher}

// ParseRole accepts "student"/"teacher" in any case.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if core.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// Identity is who is logged in for the lifetime of the dashboard.
type Identity struct {
	Role        Role   `json:"role"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	// RollNumber links a student identity to the roster.
	RollNumber string `json:"roll_number,omitempty"`
}

func (id Identity) IsZero() bool { return id.Username == "" }

func (id Identity) IsStudent() bool { return id.Role == RoleStudent }

func (id Identity) IsTeacher() bool { return id.Role == RoleTeacher }

// LoginForm is what the login screen collects.
type LoginForm struct {
	Role     string `json:"role" validate:"required,oneof=student teacher"`
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

func (lf *LoginForm) Validate() error {
	lf.Role = core.CleanString(lf.Role, true /* lower */)
	lf.Username = core.CleanString(lf.Username)
	if err := core.Validate.Struct(lf); err != nil {
		return core.AsValidationError(err, "missing information")
	}
	return nil
}
