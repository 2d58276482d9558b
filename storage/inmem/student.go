package inmemdb

import (
	"sort"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/attendance"
)

type studentRepository struct {
	db *DB
}

var _ attendance.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) attendance.Repository {
	return &studentRepository{db: db}
}

// query returns copies of all students ordered by ID. Callers must hold the lock.
func (repo *studentRepository) query() []attendance.Student {
	students := make([]attendance.Student, 0, len(repo.db.student.table))
	for _, st := range repo.db.student.table {
		students = append(students, st.Clone())
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (repo *studentRepository) QuerySubjects() ([]attendance.Subject, error) {
	repo.db.subject.RLock()
	defer repo.db.subject.RUnlock()

	subjects := make([]attendance.Subject, len(repo.db.subject.rows))
	copy(subjects, repo.db.subject.rows)
	return subjects, nil
}

func (repo *studentRepository) GetTeacher() (attendance.Teacher, error) {
	teacher := repo.db.teacher
	teacher.Subjects = append([]string(nil), teacher.Subjects...)
	return teacher, nil
}

func (repo *studentRepository) CreateStudent(st attendance.Student) (attendance.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	for _, existing := range repo.db.student.table {
		if existing.ID == st.ID || existing.RollNumber == st.RollNumber {
			return attendance.Student{}, attendance.ErrStudentExists
		}
	}
	stored := st.Clone()
	repo.db.student.table[st.ID] = &stored
	return stored.Clone(), nil
}

func (repo *studentRepository) QueryStudents() ([]attendance.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id int) (attendance.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()

	if st, ok := repo.db.student.table[id]; ok {
		return st.Clone(), nil
	}
	return attendance.Student{}, attendance.ErrStudentNotFound
}

func (repo *studentRepository) GetStudentByRollNumber(roll string) (attendance.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()

	for _, st := range repo.query() {
		if core.EqualFold(st.RollNumber, roll) {
			return st, nil
		}
	}
	return attendance.Student{}, attendance.ErrStudentNotFound
}

func (repo *studentRepository) UpdateSubjectAttendance(studentID int, sa attendance.SubjectAttendance) (attendance.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	st, ok := repo.db.student.table[studentID]
	if !ok {
		return attendance.Student{}, attendance.ErrStudentNotFound
	}
	for i, orig := range st.Subjects {
		if orig.Subject == sa.Subject {
			recs := make([]attendance.Record, len(sa.Records))
			copy(recs, sa.Records)
			st.Subjects[i] = attendance.SubjectAttendance{Subject: orig.Subject, Records: recs}
			return st.Clone(), nil
		}
	}
	return attendance.Student{}, attendance.ErrNotEnrolled
}
