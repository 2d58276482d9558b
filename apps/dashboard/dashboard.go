package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/class"
	"github.com/trezcool/mahudhurio/core/session"
)

var errUnknownCommand = errors.New("unknown command")

// dashboard is the interactive session: one screen at a time, one input line per action.
type dashboard struct {
	cli    *commandLine
	router *Router

	role      session.Role
	identity  session.Identity
	subject   string // selected subject
	studentID int    // selected student
	form      class.SetupForm
	quit      bool
}

func (cli *commandLine) runDashboard() error {
	d := &dashboard{cli: cli, router: NewRouter(ScreenRoleSelect)}
	return d.run()
}

func (d *dashboard) run() error {
	for !d.quit {
		if d.router.Current() == ScreenLogin {
			if err := d.login(); err != nil {
				return ignoreEOF(err)
			}
			continue
		}

		if err := d.render(); err != nil {
			d.fail(err)
			if !d.router.Back() {
				d.logout()
			}
			continue
		}
		line, err := d.cli.prompt.ReadLine(fmt.Sprintf("\n[%s]> ", d.router.Current()))
		if err != nil {
			return ignoreEOF(err)
		}
		if err = d.handle(line); err != nil {
			d.fail(err)
		}
	}
	return nil
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

// login asks for the username and the password of the selected role.
func (d *dashboard) login() error {
	d.cli.renderLogin(d.role.String())
	uname, err := d.cli.prompt.ReadLine("Username: ")
	if err != nil {
		return err
	}
	switch core.CleanString(uname, true /* lower */) {
	case "back":
		d.router.Back()
		return nil
	case "quit", "exit":
		d.quit = true
		return nil
	}
	pwd, err := d.cli.prompt.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	id, err := d.cli.sessSvc.Login(session.LoginForm{Role: d.role.String(), Username: uname, Password: pwd})
	if err != nil {
		d.fail(err)
		return nil
	}
	if id.IsStudent() {
		st, err := d.cli.attSvc.StudentByRollNumber(id.RollNumber)
		if err != nil {
			d.fail(errors.Wrap(err, "loading student"))
			return nil
		}
		id.DisplayName = st.Name
	}

	d.identity = id
	d.router.Reset(ScreenDashboard)
	d.cli.logger.Info(fmt.Sprintf("%s logged in", id.Username), id)
	d.cli.notifier.Notify(core.Info("Login Successful", fmt.Sprintf("Welcome back, %s!", id.Username)))
	return nil
}

func (d *dashboard) logout() {
	if _, err := d.cli.classSvc.End(); err == nil {
		d.cli.logger.Info("class discarded on logout", d.identity)
	}
	d.identity = session.Identity{}
	d.role = ""
	d.subject, d.studentID = "", 0
	d.form = class.SetupForm{}
	d.router.Reset(ScreenRoleSelect)
}

func (d *dashboard) render() error {
	cli := d.cli
	switch d.router.Current() {
	case ScreenRoleSelect:
		cli.renderRoleSelect()

	case ScreenDashboard:
		if d.identity.IsStudent() {
			st, err := cli.attSvc.StudentByRollNumber(d.identity.RollNumber)
			if err != nil {
				return err
			}
			cli.renderStudentDashboard(st)
			cli.commands("open <subject>", "logout", "quit")
			return nil
		}
		summaries, err := cli.attSvc.SubjectSummaries()
		if err != nil {
			return err
		}
		var active *class.Session
		if sess, ok := cli.classSvc.Active(); ok {
			active = &sess
		}
		cli.renderTeacherDashboard(d.identity.DisplayName, summaries, active)
		cmds := []string{"start", "analytics", "open <subject>", "logout", "quit"}
		if active != nil {
			cmds[0] = "class"
		}
		cli.commands(cmds...)

	case ScreenSubjectDetail:
		st, err := cli.attSvc.StudentByRollNumber(d.identity.RollNumber)
		if err != nil {
			return err
		}
		sa, ok := st.Attendance(d.subject)
		if !ok {
			return attendance.ErrNotEnrolled
		}
		cli.renderSubjectDetail(sa)
		cli.commands("back", "logout", "quit")

	case ScreenClassSetup:
		subjects, err := cli.attSvc.TaughtSubjects()
		if err != nil {
			return err
		}
		cli.renderClassSetup(d.form, subjects)
		cli.commands("mode online|offline", "class <name>", "subject <name>", "room <number>", "link <url>", "start", "back")

	case ScreenActiveClass:
		sess, ok := cli.classSvc.Active()
		if !ok {
			return class.ErrNoActiveClass
		}
		_, rows, err := cli.attSvc.Roster(sess.Subject)
		if err != nil {
			return err
		}
		cli.renderActiveClass(sess, rows)
		cli.commands("mark <id> present|absent", "end", "back")

	case ScreenStudentList:
		sub, rows, err := cli.attSvc.Roster(d.subject)
		if err != nil {
			return err
		}
		cli.renderStudentList(sub, rows)
		cli.commands("open <id>", "back", "logout")

	case ScreenStudentDetail:
		st, sa, err := d.selectedAttendance()
		if err != nil {
			return err
		}
		cli.renderStudentDetail(st, sa)
		cli.commands("override <date> present|absent", "back", "logout")

	case ScreenAnalytics:
		all, err := cli.attSvc.Analytics()
		if err != nil {
			return err
		}
		cli.renderAnalytics(all, false)
		cli.commands("open <id> [subject]", "back", "logout")
	}
	return nil
}

func (d *dashboard) selectedAttendance() (attendance.Student, attendance.SubjectAttendance, error) {
	st, err := d.cli.attSvc.Student(d.studentID)
	if err != nil {
		return attendance.Student{}, attendance.SubjectAttendance{}, err
	}
	sa, ok := st.Attendance(d.subject)
	if !ok {
		return attendance.Student{}, attendance.SubjectAttendance{}, attendance.ErrNotEnrolled
	}
	return st, sa, nil
}

// splitCommand returns the lowered command word and the rest of the line.
func splitCommand(line string) (string, string) {
	line = core.CleanString(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0]), ""
	}
	return strings.ToLower(parts[0]), core.CleanString(parts[1])
}

func (d *dashboard) handle(line string) error {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "":
		return nil
	case "quit", "exit":
		d.quit = true
		return nil
	case "back":
		d.router.Back()
		return nil
	case "logout":
		if !d.identity.IsZero() {
			d.logout()
			return nil
		}
	}

	switch d.router.Current() {
	case ScreenRoleSelect:
		role, ok := session.ParseRole(cmd)
		if !ok {
			return errUnknownCommand
		}
		d.role = role
		d.router.Push(ScreenLogin)
		return nil
	case ScreenDashboard:
		if d.identity.IsStudent() {
			return d.handleStudentDashboard(cmd, arg)
		}
		return d.handleTeacherDashboard(cmd, arg)
	case ScreenClassSetup:
		return d.handleClassSetup(cmd, arg)
	case ScreenActiveClass:
		return d.handleActiveClass(cmd, arg)
	case ScreenStudentList:
		return d.handleStudentList(cmd, arg)
	case ScreenStudentDetail:
		return d.handleStudentDetail(cmd, arg)
	case ScreenAnalytics:
		return d.handleAnalytics(cmd, arg)
	}
	return errUnknownCommand
}

func (d *dashboard) handleStudentDashboard(cmd, arg string) error {
	if cmd != "open" {
		return errUnknownCommand
	}
	st, err := d.cli.attSvc.StudentByRollNumber(d.identity.RollNumber)
	if err != nil {
		return err
	}
	sa, ok := st.Attendance(arg)
	if !ok {
		if _, err := d.cli.attSvc.Subject(arg); err != nil {
			return err
		}
		return attendance.ErrNotEnrolled
	}
	d.subject = sa.Subject
	d.router.Push(ScreenSubjectDetail)
	return nil
}

func (d *dashboard) handleTeacherDashboard(cmd, arg string) error {
	switch cmd {
	case "start":
		if _, ok := d.cli.classSvc.Active(); ok {
			return class.ErrClassActive
		}
		d.form = class.SetupForm{}
		d.router.Push(ScreenClassSetup)
	case "class":
		if _, ok := d.cli.classSvc.Active(); !ok {
			return class.ErrNoActiveClass
		}
		d.router.Push(ScreenActiveClass)
	case "analytics":
		d.router.Push(ScreenAnalytics)
	case "open":
		sub, _, err := d.cli.attSvc.Roster(arg)
		if err != nil {
			return err
		}
		d.subject = sub.Name
		d.router.Push(ScreenStudentList)
	default:
		return errUnknownCommand
	}
	return nil
}

func (d *dashboard) handleClassSetup(cmd, arg string) error {
	switch cmd {
	case "mode":
		d.form.Mode = arg
	case "class":
		d.form.ClassName = arg
	case "subject":
		d.form.Subject = arg
	case "room":
		d.form.RoomNumber = arg
	case "link":
		d.form.MeetingLink = arg
	case "start":
		sess, err := d.cli.classSvc.Start(d.form)
		if err != nil {
			return err
		}
		d.cli.logger.Info(fmt.Sprintf("class %s started", sess.ID), d.identity)
		d.cli.notifier.Notify(core.Info("Class Started", fmt.Sprintf("%s class has been started", sess.Subject)))
		d.router.Replace(ScreenActiveClass)
	default:
		return errUnknownCommand
	}
	return nil
}

func (d *dashboard) handleActiveClass(cmd, arg string) error {
	switch cmd {
	case "mark":
		fields := strings.Fields(arg)
		if len(fields) != 2 {
			return errUnknownCommand
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return attendance.ErrStudentNotFound
		}
		status, err := attendance.ParseStatus(fields[1])
		if err != nil {
			return err
		}
		if _, err = d.cli.classSvc.Mark(id, status); err != nil {
			return err
		}
		d.cli.notifier.Notify(core.Info("Attendance Updated", fmt.Sprintf("Student attendance has been marked as %s", status)))
	case "end":
		sess, err := d.cli.classSvc.End()
		if err != nil {
			return err
		}
		d.cli.logger.Info(fmt.Sprintf("class %s ended", sess.ID), d.identity)
		d.cli.notifier.Notify(core.Info("Class Ended", "Attendance has been recorded"))
		d.router.Reset(ScreenDashboard)
	default:
		return errUnknownCommand
	}
	return nil
}

func (d *dashboard) handleStudentList(cmd, arg string) error {
	if cmd != "open" {
		return errUnknownCommand
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return attendance.ErrStudentNotFound
	}
	st, err := d.cli.attSvc.Student(id)
	if err != nil {
		return err
	}
	if _, ok := st.Attendance(d.subject); !ok {
		return attendance.ErrNotEnrolled
	}
	d.studentID = st.ID
	d.router.Push(ScreenStudentDetail)
	return nil
}

func (d *dashboard) handleStudentDetail(cmd, arg string) error {
	if cmd != "override" {
		return errUnknownCommand
	}
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return errUnknownCommand
	}
	status, err := attendance.ParseStatus(fields[1])
	if err != nil {
		return err
	}
	if _, _, err = d.cli.attSvc.OverrideAttendance(d.studentID, d.subject, fields[0], status); err != nil {
		return err
	}
	d.cli.notifier.Notify(core.Info("Attendance Override", fmt.Sprintf("Attendance updated for %s", fields[0])))
	return nil
}

func (d *dashboard) handleAnalytics(cmd, arg string) error {
	if cmd != "open" {
		return errUnknownCommand
	}
	idStr, subject := splitCommand(arg)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return attendance.ErrStudentNotFound
	}
	st, err := d.cli.attSvc.Student(id)
	if err != nil {
		return err
	}

	if subject == "" {
		taught, err := d.cli.attSvc.TaughtSubjects()
		if err != nil {
			return err
		}
		var enrolled []string
		for _, sub := range taught {
			if _, ok := st.Attendance(sub.Name); ok {
				enrolled = append(enrolled, sub.Name)
			}
		}
		if len(enrolled) != 1 {
			return errors.Errorf("%s attends %s: choose one with `open %d <subject>`", st.Name, strings.Join(enrolled, ", "), st.ID)
		}
		subject = enrolled[0]
	}
	sa, ok := st.Attendance(subject)
	if !ok {
		if _, err := d.cli.attSvc.Subject(subject); err != nil {
			return err
		}
		return attendance.ErrNotEnrolled
	}
	d.subject, d.studentID = sa.Subject, st.ID
	d.router.Push(ScreenStudentDetail)
	return nil
}

// fail turns an error into a destructive notification; unexpected errors are logged too.
func (d *dashboard) fail(err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		d.cli.notifier.Notify(core.Alert(capitalize(vErr.Error()), vErr.Messages()))
		return
	}

	titles := map[error]string{
		session.ErrInvalidCredentials: "Login Failed",
		errUnknownCommand:             "Unknown Command",
		attendance.ErrRecordNotFound:  "No Record",
		attendance.ErrStudentNotFound: "Unknown Student",
		attendance.ErrSubjectNotFound: "Unknown Subject",
		attendance.ErrNotEnrolled:     "Not Enrolled",
		attendance.ErrInvalidStatus:   "Invalid Status",
		class.ErrClassActive:          "Class In Progress",
		class.ErrNoActiveClass:        "No Class In Progress",
		class.ErrNotInRoster:          "Unknown Student",
	}
	if title, ok := titles[errors.Cause(err)]; ok {
		desc := err.Error()
		switch errors.Cause(err) {
		case session.ErrInvalidCredentials:
			desc = "Invalid credentials. Check the demo logins above."
		case errUnknownCommand:
			desc = "type one of the commands listed above"
		}
		d.cli.notifier.Notify(core.Alert(title, desc))
		return
	}

	d.cli.logger.Error(fmt.Sprintf("dashboard: %v", err), err, d.identity)
	d.cli.notifier.Notify(core.Alert("Something Went Wrong", err.Error()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
