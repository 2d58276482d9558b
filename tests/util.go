package testutil

import (
	"fmt"
	"testing"

	"github.com/trezcool/mahudhurio/core/attendance"
	inmemdb "github.com/trezcool/mahudhurio/storage/inmem"
)

// PrepareRoster returns a service over a freshly seeded in-memory roster.
func PrepareRoster(t *testing.T) (*attendance.Service, attendance.Repository) {
	db, err := inmemdb.OpenSeeded()
	if err != nil {
		t.Fatalf("PrepareRoster() failed: %v", err)
	}
	repo := inmemdb.NewStudentRepository(db)
	return attendance.NewService(repo), repo
}

// EnrollStudent adds a student attending one subject, one status per day from 2024-02-01.
func EnrollStudent(t *testing.T, svc *attendance.Service, id int, name, roll, subject string, statuses ...string) attendance.Student {
	pairs := make([]string, 0, 2*len(statuses))
	for i, s := range statuses {
		pairs = append(pairs, fmt.Sprintf("2024-02-%02d", i+1), s)
	}
	st, err := svc.Enroll(attendance.NewStudent{
		ID:         id,
		Name:       name,
		RollNumber: roll,
		Subjects:   []attendance.SubjectAttendance{{Subject: subject, Records: attendance.MustRecords(pairs...)}},
	})
	if err != nil {
		t.Fatalf("EnrollStudent() failed: %v", err)
	}
	return st
}
