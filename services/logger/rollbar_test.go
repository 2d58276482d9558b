package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/session"
)

func setup(t *testing.T) (*RollbarLogger, *bytes.Buffer) {
	var out bytes.Buffer
	logger := NewRollbarLogger(log.New(&out, "", 0), &core.Config{Env: "TEST", Build: "test"})
	logger.Enable(false)
	return logger, &out
}

func TestRollbarLogger_print(t *testing.T) {
	logger, out := setup(t)
	id := session.Identity{Role: session.RoleTeacher, Username: "teacher", DisplayName: "Dr. Smith"}

	logger.Info("class started", id)
	logger.Error("dashboard", errors.New("boom"), id)

	assert.Equal(t, "class started\ndashboard\nboom\n", out.String())
	assert.NotContains(t, out.String(), "Dr. Smith")
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger, _ := setup(t)
	id := session.Identity{Role: session.RoleStudent, Username: "student"}
	extra := map[string]interface{}{"subject": "Data Structures"}

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{name: "no args", want: []interface{}{"msg"}},
		{name: "identity dropped", args: []interface{}{id}, want: []interface{}{"msg"}},
		{name: "others kept", args: []interface{}{extra, id, session.Identity{}}, want: []interface{}{"msg", extra}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.prepare("msg", tt.args))
		})
	}
}
