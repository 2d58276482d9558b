package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/class"
)

const barWidth = 10

func (cli *commandLine) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) table() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
}

func (cli *commandLine) heading(title string) {
	cli.printf("\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// standing colours a percentage by its classification.
func (cli *commandLine) standing(p int) string {
	label := fmt.Sprintf("%d%% %s", p, attendance.Classify(p))
	switch attendance.Classify(p) {
	case attendance.OK:
		return cli.color.Green(label)
	case attendance.Warning:
		return cli.color.Yellow(label)
	default:
		return cli.color.Red(label)
	}
}

func (cli *commandLine) summaryLine(s attendance.Summary) string {
	return fmt.Sprintf("%s (%d/%d attended)", cli.standing(s.Percentage), s.Attended, s.Total)
}

func bar(p int) string {
	filled := p * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func (cli *commandLine) commands(cmds ...string) {
	cli.printf("\nCommands: %s\n", strings.Join(cmds, " | "))
}

func (cli *commandLine) renderRoleSelect() {
	cli.heading("Attendance Management")
	cli.printf("Choose your role to continue:\n")
	cli.printf("  student - view your attendance\n")
	cli.printf("  teacher - manage classes and attendance\n")
	cli.commands("student", "teacher", "quit")
}

func (cli *commandLine) renderLogin(role string) {
	cli.heading(strings.TrimSpace(capitalize(role) + " Login"))
	cli.printf("Demo logins: student / student123, teacher / teacher123\n")
	cli.printf("Type `back` as username to choose another role.\n")
}

func (cli *commandLine) renderStudentDashboard(st attendance.Student) {
	cli.heading("Student Dashboard")
	cli.printf("Welcome back, %s (%s)\n", st.Name, st.RollNumber)
	cli.printf("Overall attendance: %s\n", cli.summaryLine(attendance.Overall(st)))

	if low := attendance.LowSubjects(st); len(low) > 0 {
		names := make([]string, 0, len(low))
		for _, sa := range low {
			names = append(names, sa.Subject)
		}
		cli.printf("%s attendance below %d%% in: %s\n",
			cli.color.Red("Low Attendance Alert:"), attendance.OKThreshold, strings.Join(names, ", "))
	}

	cli.printf("\n")
	w := cli.table()
	_, _ = fmt.Fprintln(w, "SUBJECT\tATTENDANCE\t\tATTENDED")
	for _, sa := range st.Subjects {
		s := sa.Summary()
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\n", sa.Subject, bar(s.Percentage), cli.standing(s.Percentage), s.Attended, s.Total)
	}
	_ = w.Flush()
}

func (cli *commandLine) renderRecords(w io.Writer, recs []attendance.Record) {
	for _, rec := range recs {
		status := cli.color.Green(rec.Status.Title())
		if rec.Status == attendance.Absent {
			status = cli.color.Red(rec.Status.Title())
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", rec.Date, status)
	}
}

func (cli *commandLine) renderSubjectDetail(sa attendance.SubjectAttendance) {
	s := sa.Summary()
	cli.heading(sa.Subject + " - Attendance Details")
	cli.printf("Overall attendance: %s\n", cli.standing(s.Percentage))
	cli.printf("Classes attended:   %d\n", s.Attended)
	cli.printf("Total classes:      %d\n\n", s.Total)
	w := cli.table()
	_, _ = fmt.Fprintln(w, "DATE\tSTATUS")
	cli.renderRecords(w, sa.Records)
	_ = w.Flush()
}

func (cli *commandLine) renderTeacherDashboard(name string, summaries []attendance.SubjectSummary, active *class.Session) {
	cli.heading("Teacher Dashboard")
	cli.printf("Welcome back, %s\n", name)
	if active != nil {
		cli.printf("%s %s (%s) is in progress\n", cli.color.Green("Live:"), active.Subject, active.ClassName)
	}
	cli.printf("\nYour subjects:\n")
	w := cli.table()
	_, _ = fmt.Fprintln(w, "SUBJECT\tCLASS\tSTUDENTS\tLOW ATTENDANCE")
	for _, sum := range summaries {
		low := "-"
		if sum.LowAttendanceCount > 0 {
			low = cli.color.Red(fmt.Sprintf("%d", sum.LowAttendanceCount))
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", sum.Subject.Name, sum.Subject.ClassName, sum.StudentCount, low)
	}
	_ = w.Flush()
}

func (cli *commandLine) renderClassSetup(form class.SetupForm, subjects []attendance.Subject) {
	cli.heading("Start New Class")
	orNone := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return s
	}
	cli.printf("mode:    %s\n", orNone(form.Mode))
	cli.printf("class:   %s\n", orNone(form.ClassName))
	cli.printf("subject: %s\n", orNone(form.Subject))
	switch class.Mode(strings.ToLower(form.Mode)) {
	case class.ModeOffline:
		cli.printf("room:    %s\n", orNone(form.RoomNumber))
	case class.ModeOnline:
		cli.printf("link:    %s\n", orNone(form.MeetingLink))
	}
	names := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		names = append(names, sub.Name)
	}
	cli.printf("\nSubjects: %s\n", strings.Join(names, ", "))
}

func (cli *commandLine) renderActiveClass(sess class.Session, rows []attendance.StudentStanding) {
	cli.heading("Class in Progress")
	cli.printf("%s - %s (%s)\n", sess.Subject, sess.ClassName, sess.Mode)
	if sess.Mode == class.ModeOnline {
		cli.printf("Meeting link: %s\n", sess.Location)
	} else {
		cli.printf("Room: %s\n", sess.Location)
	}
	cli.printf("Started at %s\n\n", sess.StartedAt.Format("15:04 MST"))
	w := cli.table()
	_, _ = fmt.Fprintln(w, "ID\tSTUDENT\tROLL NUMBER\tTODAY")
	for _, row := range rows {
		mark := "-"
		if st, ok := sess.Marks[row.Student.ID]; ok {
			mark = st.Title()
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", row.Student.ID, row.Student.Name, row.Student.RollNumber, mark)
	}
	_ = w.Flush()
}

func (cli *commandLine) renderStudentList(sub attendance.Subject, rows []attendance.StudentStanding) {
	cli.heading(sub.Name + " - " + sub.ClassName)
	w := cli.table()
	_, _ = fmt.Fprintln(w, "ID\tSTUDENT\tROLL NUMBER\tATTENDANCE\t")
	for _, row := range rows {
		alert := ""
		if row.Alert {
			alert = cli.color.Red("Low Attendance")
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", row.Student.ID, row.Student.Name, row.Student.RollNumber, cli.standing(row.Summary.Percentage), alert)
	}
	_ = w.Flush()
}

func (cli *commandLine) renderStudentDetail(st attendance.Student, sa attendance.SubjectAttendance) {
	s := sa.Summary()
	cli.heading(st.Name + " - " + sa.Subject)
	cli.printf("Roll number:        %s\n", st.RollNumber)
	cli.printf("Overall attendance: %s\n", cli.standing(s.Percentage))
	cli.printf("Classes attended:   %d/%d\n\n", s.Attended, s.Total)
	w := cli.table()
	_, _ = fmt.Fprintln(w, "DATE\tSTATUS")
	cli.renderRecords(w, sa.Records)
	_ = w.Flush()
	cli.printf("\nAttendance overrides are not saved.\n")
}

func (cli *commandLine) renderAnalytics(all []attendance.SubjectAnalytics, lowOnly bool) {
	cli.heading("Student Analytics - All Classes")
	for _, sa := range all {
		cli.printf("\n%s - %s\n", sa.Subject.Name, sa.Subject.ClassName)
		w := cli.table()
		for _, row := range sa.Students {
			if lowOnly && !row.Alert {
				continue
			}
			alert := ""
			if row.Alert {
				alert = cli.color.Red("Alert")
			}
			_, _ = fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\n",
				row.Student.ID, row.Student.Name, row.Student.RollNumber, bar(row.Summary.Percentage), cli.standing(row.Summary.Percentage), alert)
		}
		_ = w.Flush()
	}
}
