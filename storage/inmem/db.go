// Package inmemdb keeps the dashboard's roster in process memory.
// Every Open starts from the mock constants in seed.go; nothing is written anywhere else.
package inmemdb

import (
	"sync"

	"github.com/trezcool/mahudhurio/core/attendance"
)

type (
	DB struct {
		subject *subjectTable
		student *studentTable
		teacher attendance.Teacher
	}

	subjectTable struct {
		sync.RWMutex
		rows []attendance.Subject // ordered
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*attendance.Student
	}
)

// Open returns an empty DB.
func Open() (*DB, error) {
	db := &DB{
		subject: &subjectTable{rows: make([]attendance.Subject, 0)},
		student: &studentTable{table: make(map[int]*attendance.Student)},
	}
	return db, nil
}

// OpenSeeded returns a DB holding the mock roster.
func OpenSeeded() (*DB, error) {
	db, err := Open()
	if err != nil {
		return nil, err
	}
	if err = db.seed(); err != nil {
		return nil, err
	}
	return db, nil
}
