package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/attendance"
	notifysvc "github.com/trezcool/mahudhurio/services/notify"
)

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func titles(notifier *notifysvc.ServiceMock) []string {
	got := make([]string, 0, len(notifier.Sent))
	for _, n := range notifier.Sent {
		got = append(got, n.Title)
	}
	return got
}

func Test_dashboard_teacherSession(t *testing.T) {
	cli, out, notifier := setup(t, script(
		"teacher",
		"teacher", "teacher123",
		"start",
		"mode offline",
		"class CS-A Morning",
		"subject data structures",
		"room 101",
		"start",
		"mark 3 present",
		"end",
		"open Data Structures",
		"open 1",
		"override 2024-01-17 present",
		"back",
		"back",
		"analytics",
		"open 3",
		"back",
		"back",
		"logout",
		"quit",
	))

	assert.NoError(t, cli.runDashboard())
	assert.Equal(t, []string{
		"Login Successful",
		"Class Started",
		"Attendance Updated",
		"Class Ended",
		"Attendance Override",
	}, titles(notifier))

	assert.Equal(t, core.Info("Login Successful", "Welcome back, teacher!"), notifier.Sent[0])
	assert.Equal(t, "Data Structures class has been started", notifier.Sent[1].Description)
	assert.Equal(t, "Student attendance has been marked as present", notifier.Sent[2].Description)
	assert.Equal(t, "Attendance has been recorded", notifier.Sent[3].Description)
	assert.Equal(t, "Attendance updated for 2024-01-17", notifier.Sent[4].Description)

	for _, s := range []string{
		"Teacher Dashboard",
		"Welcome back, Dr. Smith",
		"Start New Class",
		"Class in Progress",
		"Room: 101",
		"Data Structures - CS-A Morning",
		"John Doe - Data Structures",
		"100% OK",
		"Student Analytics - All Classes",
		"Mike Johnson - Data Structures",
	} {
		assert.Contains(t, out.String(), s)
	}

	// the override is the roster's value for the rest of the run
	st, err := cli.attSvc.Student(1)
	assert.NoError(t, err)
	sa, _ := st.Attendance("Data Structures")
	assert.Equal(t, attendance.Summary{Attended: 5, Total: 5, Percentage: 100}, sa.Summary())

	// the live mark is not recorded anywhere
	st, _ = cli.attSvc.Student(3)
	sa, _ = st.Attendance("Data Structures")
	assert.Equal(t, attendance.Summary{Attended: 3, Total: 5, Percentage: 60}, sa.Summary())

	_, active := cli.classSvc.Active()
	assert.False(t, active)
}

func Test_dashboard_studentSession(t *testing.T) {
	cli, out, notifier := setup(t, script(
		"student",
		"student", "wrong",
		"student", "student123",
		"open operating systems",
		"back",
		"open poetry",
		"dance",
		"logout",
		"exit",
	))

	assert.NoError(t, cli.runDashboard())
	assert.Equal(t, []string{
		"Login Failed",
		"Login Successful",
		"Unknown Subject",
		"Unknown Command",
	}, titles(notifier))
	assert.True(t, notifier.Sent[0].IsDestructive())
	assert.False(t, notifier.Sent[1].IsDestructive())
	assert.Equal(t, "Welcome back, student!", notifier.Sent[1].Description)

	for _, s := range []string{
		"Student Login",
		"Demo logins: student / student123, teacher / teacher123",
		"Welcome back, John Doe (CS2021001)",
		"Low Attendance Alert:",
		"Operating Systems - Attendance Details",
		"Classes attended:   2",
		"Total classes:      5",
	} {
		assert.Contains(t, out.String(), s)
	}
}

func Test_dashboard_classSetupErrors(t *testing.T) {
	cli, _, notifier := setup(t, script(
		"teacher",
		"teacher", "teacher123",
		"class",
		"start",
		"start",
		"mode online",
		"class CS-B Evening",
		"subject Database Management",
		"start",
		"link not-a-link",
		"start",
		"link https://meet.example.com/dbm",
		"subject Computer Networks",
		"start",
		"subject database management",
		"start",
		"back",
		"start",
	))

	// input ends with the class still running
	assert.NoError(t, cli.runDashboard())
	assert.Equal(t, []string{
		"Login Successful",
		"No Class In Progress",
		"Missing Information",
		"Missing Meeting Link",
		"Invalid Meeting Link",
		"Unknown Subject",
		"Class Started",
		"Class In Progress",
	}, titles(notifier))

	sess, ok := cli.classSvc.Active()
	if assert.True(t, ok) {
		assert.Equal(t, "https://meet.example.com/dbm", sess.Location)
		assert.Equal(t, "Database Management", sess.Subject)
	}
}

func Test_dashboard_loginBackAndQuit(t *testing.T) {
	cli, out, notifier := setup(t, script(
		"parent",
		"teacher",
		"back",
		"student",
		"quit",
	))

	assert.NoError(t, cli.runDashboard())
	assert.Equal(t, []string{"Unknown Command"}, titles(notifier))
	assert.Contains(t, out.String(), "Teacher Login")
	assert.Contains(t, out.String(), "Student Login")
	assert.Equal(t, 3, strings.Count(out.String(), "Attendance Management"))
}

func Test_dashboard_logoutDiscardsClass(t *testing.T) {
	cli, _, _ := setup(t, script(
		"teacher",
		"teacher", "teacher123",
		"start",
		"mode offline",
		"class CS-C Afternoon",
		"subject Operating Systems",
		"room 12",
		"start",
		"logout",
	))

	assert.NoError(t, cli.runDashboard())
	_, active := cli.classSvc.Active()
	assert.False(t, active)
}
