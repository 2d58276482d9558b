package attendance

import (
	"errors"

	"github.com/kat-co/vala"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/mahudhurio/core"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrStudentExists   = errors.New("a student with this id or roll number already exists")
	ErrNotEnrolled     = errors.New("student is not enrolled in this subject")
)

type (
	Repository interface {
		QuerySubjects() ([]Subject, error)
		GetTeacher() (Teacher, error)
		CreateStudent(student Student) (Student, error)
		// QueryStudents returns all students ordered by ID.
		QueryStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		GetStudentByRollNumber(roll string) (Student, error)
		// UpdateSubjectAttendance replaces the records of one of the student's subjects.
		UpdateSubjectAttendance(studentID int, sa SubjectAttendance) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(repo, "repo"),
	).CheckAndPanic()
	return &Service{repo: repo}
}

func (svc *Service) Subjects() ([]Subject, error) {
	return svc.repo.QuerySubjects()
}

// Subject resolves a subject by name, ignoring case.
// The returned error suggests the closest known subject when there is one.
func (svc *Service) Subject(name string) (Subject, error) {
	subjects, err := svc.repo.QuerySubjects()
	if err != nil {
		return Subject{}, err
	}
	names := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		if core.EqualFold(sub.Name, name) {
			return sub, nil
		}
		names = append(names, sub.Name)
	}
	if match := core.ClosestMatch(name, names); match != "" {
		return Subject{}, pkgerrors.Wrapf(ErrSubjectNotFound, "%q (did you mean %q?)", core.CleanString(name), match)
	}
	return Subject{}, pkgerrors.Wrapf(ErrSubjectNotFound, "%q", core.CleanString(name))
}

func (svc *Service) Teacher() (Teacher, error) {
	return svc.repo.GetTeacher()
}

// TaughtSubjects returns the subjects of the teacher, in the teacher's order.
func (svc *Service) TaughtSubjects() ([]Subject, error) {
	teacher, err := svc.repo.GetTeacher()
	if err != nil {
		return nil, err
	}
	subjects := make([]Subject, 0, len(teacher.Subjects))
	for _, name := range teacher.Subjects {
		sub, err := svc.Subject(name)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, sub)
	}
	return subjects, nil
}

func (svc *Service) Student(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) StudentByRollNumber(roll string) (Student, error) {
	return svc.repo.GetStudentByRollNumber(core.CleanString(roll))
}

// Enroll adds a student to the roster.
func (svc *Service) Enroll(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	for _, sa := range ns.Subjects {
		if _, err := svc.Subject(sa.Subject); err != nil {
			return Student{}, err
		}
	}
	return svc.repo.CreateStudent(Student{
		ID:         ns.ID,
		Name:       ns.Name,
		RollNumber: ns.RollNumber,
		Subjects:   ns.Subjects,
	})
}

// Roster lists the students enrolled in a subject with their standing in it.
func (svc *Service) Roster(subject string) (Subject, []StudentStanding, error) {
	sub, err := svc.Subject(subject)
	if err != nil {
		return Subject{}, nil, err
	}
	students, err := svc.repo.QueryStudents()
	if err != nil {
		return Subject{}, nil, err
	}
	rows := make([]StudentStanding, 0, len(students))
	for _, st := range students {
		sa, ok := st.Attendance(sub.Name)
		if !ok {
			continue
		}
		rows = append(rows, NewStudentStanding(st, sa))
	}
	return sub, rows, nil
}

// SubjectSummaries builds the teacher dashboard cards.
func (svc *Service) SubjectSummaries() ([]SubjectSummary, error) {
	subjects, err := svc.TaughtSubjects()
	if err != nil {
		return nil, err
	}
	summaries := make([]SubjectSummary, 0, len(subjects))
	for _, sub := range subjects {
		_, rows, err := svc.Roster(sub.Name)
		if err != nil {
			return nil, err
		}
		summary := SubjectSummary{Subject: sub, StudentCount: len(rows)}
		for _, row := range rows {
			if row.Alert {
				summary.LowAttendanceCount++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Analytics lists every student of every taught subject.
func (svc *Service) Analytics() ([]SubjectAnalytics, error) {
	subjects, err := svc.TaughtSubjects()
	if err != nil {
		return nil, err
	}
	all := make([]SubjectAnalytics, 0, len(subjects))
	for _, sub := range subjects {
		_, rows, err := svc.Roster(sub.Name)
		if err != nil {
			return nil, err
		}
		all = append(all, SubjectAnalytics{Subject: sub, Students: rows})
	}
	return all, nil
}

// OverrideAttendance replaces one day's status of a student in a subject.
// The updated records and their summary become the roster's authoritative values.
func (svc *Service) OverrideAttendance(studentID int, subject, date string, status Status) (SubjectAttendance, Summary, error) {
	status, err := ParseStatus(string(status))
	if err != nil {
		return SubjectAttendance{}, Summary{}, err
	}
	sub, err := svc.Subject(subject)
	if err != nil {
		return SubjectAttendance{}, Summary{}, err
	}
	st, err := svc.repo.GetStudentByID(studentID)
	if err != nil {
		return SubjectAttendance{}, Summary{}, err
	}
	sa, ok := st.Attendance(sub.Name)
	if !ok {
		return SubjectAttendance{}, Summary{}, ErrNotEnrolled
	}

	records, summary, err := Override(sa.Records, core.CleanString(date), status)
	if err != nil {
		return sa, summary, err
	}
	sa = SubjectAttendance{Subject: sa.Subject, Records: records}
	if _, err = svc.repo.UpdateSubjectAttendance(st.ID, sa); err != nil {
		return SubjectAttendance{}, Summary{}, pkgerrors.Wrap(err, "updating subject attendance")
	}
	return sa, summary, nil
}

// NewStudentStanding classifies a student's attendance in one subject.
func NewStudentStanding(st Student, sa SubjectAttendance) StudentStanding {
	summary := sa.Summary()
	return StudentStanding{
		Student:  st,
		Summary:  summary,
		Standing: Classify(summary.Percentage),
		Alert:    IsLow(summary.Percentage),
	}
}

// Overall sums the student's attendance over all subjects.
func Overall(st Student) Summary {
	var attended, total int
	for _, sa := range st.Subjects {
		s := sa.Summary()
		attended += s.Attended
		total += s.Total
	}
	return Summary{Attended: attended, Total: total, Percentage: Percentage(attended, total)}
}

// LowSubjects returns the subjects in which the student is below the requirement.
func LowSubjects(st Student) []SubjectAttendance {
	low := make([]SubjectAttendance, 0)
	for _, sa := range st.Subjects {
		if IsLow(sa.Summary().Percentage) {
			low = append(low, sa)
		}
	}
	return low
}
