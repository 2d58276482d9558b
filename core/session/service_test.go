package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/mahudhurio/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		username string
		password string
		want     bool
	}{
		{name: "student", role: RoleStudent, username: "student", password: "student123", want: true},
		{name: "teacher", role: RoleTeacher, username: "teacher", password: "teacher123", want: true},
		{name: "wrong password", role: RoleStudent, username: "student", password: "wrong"},
		{name: "other role's pair", role: RoleTeacher, username: "student", password: "student123"},
		{name: "case matters", role: RoleStudent, username: "Student", password: "student123"},
		{name: "unknown role", role: "admin", username: "student", password: "student123"},
		{name: "empty", role: RoleStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.role, tt.username, tt.password))
		})
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService(&core.Config{StudentRollNumber: "CS2021001", TeacherName: "Dr. Smith"})

	tests := []struct {
		name    string
		form    LoginForm
		want    Identity
		wantErr error
	}{
		{name: "student", form: LoginForm{Role: "student", Username: "student", Password: "student123"},
			want: Identity{Role: RoleStudent, Username: "student", RollNumber: "CS2021001"}},
		{name: "teacher", form: LoginForm{Role: " Teacher ", Username: " teacher ", Password: "teacher123"},
			want: Identity{Role: RoleTeacher, Username: "teacher", DisplayName: "Dr. Smith"}},
		{name: "wrong password", form: LoginForm{Role: "teacher", Username: "teacher", Password: "student123"}, wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(tt.form)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Login_missingInformation(t *testing.T) {
	svc := NewService(&core.Config{})

	_, err := svc.Login(LoginForm{Role: "parent", Username: "  "})
	if !assert.True(t, core.IsValidationError(err)) {
		return
	}
	vErr := err.(*core.ValidationError)
	assert.Equal(t, "missing information", vErr.Error())
	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"role", "username", "password"}, fields)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" STUDENT")
	assert.True(t, ok)
	assert.Equal(t, RoleStudent, r)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
}
