package session

import (
	"errors"

	"github.com/trezcool/mahudhurio/core"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// credentials are the fixed demo logins; this is a placeholder, not an access control.
var credentials = map[Role]struct{ username, password string }{
	RoleStudent: {username: "student", password: "student123"},
	RoleTeacher: {username: "teacher", password: "teacher123"},
}

// Validate compares username and password with the fixed pair of the role.
func Validate(role Role, username, password string) bool {
	creds, ok := credentials[role]
	if !ok {
		return false
	}
	return username == creds.username && password == creds.password
}

type Service struct {
	studentRollNumber string
	teacherName       string
}

func NewService(conf *core.Config) *Service {
	return &Service{
		studentRollNumber: conf.StudentRollNumber,
		teacherName:       conf.TeacherName,
	}
}

// Login validates the form and checks the credentials of the chosen role.
func (svc *Service) Login(form LoginForm) (Identity, error) {
	if err := form.Validate(); err != nil {
		return Identity{}, err
	}
	role, _ := ParseRole(form.Role)
	if !Validate(role, form.Username, form.Password) {
		return Identity{}, ErrInvalidCredentials
	}

	id := Identity{Role: role, Username: form.Username}
	switch role {
	case RoleStudent:
		id.RollNumber = svc.studentRollNumber
	case RoleTeacher:
		id.DisplayName = svc.teacherName
	}
	return id, nil
}
