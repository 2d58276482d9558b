package attendance

import (
	"errors"
	"strings"

	"github.com/trezcool/mahudhurio/core"
)

// Status of a student for one class session.
type Status string

const (
	Present Status = "present"
	Absent  Status = "absent"
)

var ErrInvalidStatus = errors.New("status must be one of: present, absent")

// ParseStatus accepts "present"/"absent" in any case.
func ParseStatus(s string) (Status, error) {
	switch Status(core.CleanString(s, true /* lower */)) {
	case Present:
		return Present, nil
	case Absent:
		return Absent, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }

// Title is the display form of the status ("Present", "Absent").
func (s Status) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Record is one day's attendance. Dates are compared as opaque tokens.
type Record struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Status Status `json:"status" validate:"required,oneof=present absent"`
}

// NewRecord validates and builds a Record.
func NewRecord(date string, status Status) (Record, error) {
	rec := Record{Date: core.CleanString(date), Status: status}
	if err := core.Validate.Struct(rec); err != nil {
		return Record{}, core.AsValidationError(err, "invalid attendance record")
	}
	return rec, nil
}

// MustRecords builds records from (date, status) pairs; it panics on invalid input and is meant for constants.
func MustRecords(pairs ...string) []Record {
	if len(pairs)%2 != 0 {
		panic("attendance.MustRecords: odd number of arguments")
	}
	recs := make([]Record, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		status, err := ParseStatus(pairs[i+1])
		if err != nil {
			panic(err)
		}
		rec, err := NewRecord(pairs[i], status)
		if err != nil {
			panic(err)
		}
		recs = append(recs, rec)
	}
	return recs
}

// Summary holds the statistics derived from a sequence of records.
type Summary struct {
	Attended   int `json:"attended"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Standing is the display treatment chosen for a percentage.
type Standing int

const (
	OK Standing = iota
	Warning
	Critical
)

func (s Standing) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "Warning"
	default:
		return "Critical"
	}
}

type Subject struct {
	Name      string `json:"name"`
	ClassName string `json:"class_name"`
}

// SubjectAttendance is a student's attendance for one subject.
// Counts are always derived from Records.
type SubjectAttendance struct {
	Subject string   `json:"subject"`
	Records []Record `json:"records"`
}

func (sa SubjectAttendance) Summary() Summary { return Aggregate(sa.Records) }

func (sa SubjectAttendance) clone() SubjectAttendance {
	recs := make([]Record, len(sa.Records))
	copy(recs, sa.Records)
	return SubjectAttendance{Subject: sa.Subject, Records: recs}
}

type Student struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	RollNumber string              `json:"roll_number"`
	Subjects   []SubjectAttendance `json:"subjects"`
}

// Attendance returns the student's attendance for the named subject.
func (s Student) Attendance(subject string) (SubjectAttendance, bool) {
	for _, sa := range s.Subjects {
		if core.EqualFold(sa.Subject, subject) {
			return sa, true
		}
	}
	return SubjectAttendance{}, false
}

// Clone returns a deep copy so callers never share record slices with the store.
func (s Student) Clone() Student {
	c := s
	c.Subjects = make([]SubjectAttendance, len(s.Subjects))
	for i, sa := range s.Subjects {
		c.Subjects[i] = sa.clone()
	}
	return c
}

type Teacher struct {
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
}

// NewStudent contains information needed to enroll a student in the roster.
type NewStudent struct {
	ID         int                 `json:"id" validate:"required,gt=0"`
	Name       string              `json:"name" validate:"notblank"`
	RollNumber string              `json:"roll_number" validate:"notblank,alphanum"`
	Subjects   []SubjectAttendance `json:"subjects"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.RollNumber = core.CleanString(ns.RollNumber)
	if err := core.Validate.Struct(ns); err != nil {
		return core.AsValidationError(err, "invalid student")
	}
	return nil
}

// SubjectSummary is the teacher dashboard's card for one subject.
type SubjectSummary struct {
	Subject            Subject `json:"subject"`
	StudentCount       int     `json:"student_count"`
	LowAttendanceCount int     `json:"low_attendance_count"`
}

// StudentStanding is one analytics row.
type StudentStanding struct {
	Student  Student  `json:"student"`
	Summary  Summary  `json:"summary"`
	Standing Standing `json:"standing"`
	Alert    bool     `json:"alert"`
}

type SubjectAnalytics struct {
	Subject  Subject           `json:"subject"`
	Students []StudentStanding `json:"students"`
}
