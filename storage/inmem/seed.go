package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/trezcool/mahudhurio/core/attendance"
)

const (
	DataStructures     = "Data Structures"
	DatabaseManagement = "Database Management"
	OperatingSystems   = "Operating Systems"
	ComputerNetworks   = "Computer Networks"
)

var (
	seedSubjects = []attendance.Subject{
		{Name: DataStructures, ClassName: "CS-A Morning"},
		{Name: DatabaseManagement, ClassName: "CS-B Evening"},
		{Name: OperatingSystems, ClassName: "CS-C Afternoon"},
		{Name: ComputerNetworks, ClassName: "CS-D Morning"},
	}

	seedTeacher = attendance.Teacher{
		Name:     "Dr. Smith",
		Subjects: []string{DataStructures, DatabaseManagement, OperatingSystems},
	}
)

func week(statuses ...string) []attendance.Record {
	dates := []string{"2024-01-15", "2024-01-16", "2024-01-17", "2024-01-18", "2024-01-19"}
	pairs := make([]string, 0, 2*len(statuses))
	for i, s := range statuses {
		pairs = append(pairs, dates[i], s)
	}
	return attendance.MustRecords(pairs...)
}

func seedStudents() []attendance.NewStudent {
	const p, a = "present", "absent"
	return []attendance.NewStudent{
		{ID: 1, Name: "John Doe", RollNumber: "CS2021001", Subjects: []attendance.SubjectAttendance{
			{Subject: DataStructures, Records: week(p, p, a, p, p)},
			{Subject: DatabaseManagement, Records: week(p, a, p, a, p)},
			{Subject: OperatingSystems, Records: week(a, p, a, p, a)},
			{Subject: ComputerNetworks, Records: week(p, a, p, a, p)},
		}},
		{ID: 2, Name: "Jane Smith", RollNumber: "CS2021002", Subjects: []attendance.SubjectAttendance{
			{Subject: DataStructures, Records: week(p, p, p, p, a)},
		}},
		{ID: 3, Name: "Mike Johnson", RollNumber: "CS2021003", Subjects: []attendance.SubjectAttendance{
			{Subject: DataStructures, Records: week(a, p, a, p, p)},
		}},
		{ID: 4, Name: "Sarah Wilson", RollNumber: "CS2021004", Subjects: []attendance.SubjectAttendance{
			{Subject: DatabaseManagement, Records: week(p, a, p, p, p)},
		}},
		{ID: 5, Name: "David Brown", RollNumber: "CS2021005", Subjects: []attendance.SubjectAttendance{
			{Subject: DatabaseManagement, Records: week(p, p, p, p, p)},
		}},
		{ID: 6, Name: "Lisa Davis", RollNumber: "CS2021006", Subjects: []attendance.SubjectAttendance{
			{Subject: OperatingSystems, Records: week(p, a, a, p, p)},
		}},
	}
}

func (db *DB) seed() error {
	db.subject.Lock()
	db.subject.rows = append(db.subject.rows, seedSubjects...)
	db.subject.Unlock()

	db.teacher = seedTeacher

	repo := NewStudentRepository(db)
	for _, ns := range seedStudents() {
		if err := ns.Validate(); err != nil {
			return errors.Wrapf(err, "seeding student %d", ns.ID)
		}
		st := attendance.Student{ID: ns.ID, Name: ns.Name, RollNumber: ns.RollNumber, Subjects: ns.Subjects}
		if _, err := repo.CreateStudent(st); err != nil {
			return errors.Wrapf(err, "seeding student %d", ns.ID)
		}
	}
	return nil
}
