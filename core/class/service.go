package class

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/attendance"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrClassActive   = errors.New("a class is already in progress")
	ErrNoActiveClass = errors.New("no class in progress")
	ErrNotInRoster   = errors.New("student is not in this class")
)

type (
	// Catalog is what a class needs to know about subjects and rosters.
	Catalog interface {
		TaughtSubjects() ([]attendance.Subject, error)
		Roster(subject string) (attendance.Subject, []attendance.StudentStanding, error)
	}

	// Service holds at most one live class. Sessions are never stored anywhere.
	Service struct {
		catalog Catalog
		active  *Session
	}
)

func NewService(catalog Catalog) *Service {
	vala.BeginValidation().Validate(
		vala.IsNotNil(catalog, "catalog"),
	).CheckAndPanic()
	return &Service{catalog: catalog}
}

// Start validates the setup form and opens a class for one of the teacher's subjects.
func (svc *Service) Start(form SetupForm) (Session, error) {
	if svc.active != nil {
		return Session{}, ErrClassActive
	}
	if err := form.Validate(); err != nil {
		return Session{}, err
	}

	subject, err := svc.taughtSubject(form.Subject)
	if err != nil {
		return Session{}, err
	}

	svc.active = &Session{
		ID:        uuid.New(),
		Subject:   subject.Name,
		ClassName: form.ClassName,
		Mode:      Mode(form.Mode),
		Location:  form.Location(),
		Active:    true,
		StartedAt: NowFunc().UTC(),
		Marks:     make(map[int]attendance.Status),
	}
	return svc.active.clone(), nil
}

func (svc *Service) taughtSubject(name string) (attendance.Subject, error) {
	subjects, err := svc.catalog.TaughtSubjects()
	if err != nil {
		return attendance.Subject{}, pkgerrors.Wrap(err, "querying taught subjects")
	}
	names := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		if core.EqualFold(sub.Name, name) {
			return sub, nil
		}
		names = append(names, sub.Name)
	}
	if match := core.ClosestMatch(name, names); match != "" {
		return attendance.Subject{}, pkgerrors.Wrapf(attendance.ErrSubjectNotFound, "%q (did you mean %q?)", name, match)
	}
	return attendance.Subject{}, pkgerrors.Wrapf(attendance.ErrSubjectNotFound, "%q", name)
}

// Active returns the class in progress, if any.
func (svc *Service) Active() (Session, bool) {
	if svc.active == nil {
		return Session{}, false
	}
	return svc.active.clone(), true
}

// Mark records a live attendance mark for a student of the class in progress.
func (svc *Service) Mark(studentID int, status attendance.Status) (Session, error) {
	if svc.active == nil {
		return Session{}, ErrNoActiveClass
	}
	status, err := attendance.ParseStatus(string(status))
	if err != nil {
		return Session{}, err
	}
	_, rows, err := svc.catalog.Roster(svc.active.Subject)
	if err != nil {
		return Session{}, err
	}
	for _, row := range rows {
		if row.Student.ID == studentID {
			svc.active.Marks[studentID] = status
			return svc.active.clone(), nil
		}
	}
	return Session{}, ErrNotInRoster
}

// End closes the class in progress and discards it.
func (svc *Service) End() (Session, error) {
	if svc.active == nil {
		return Session{}, ErrNoActiveClass
	}
	ended := svc.active.clone()
	ended.Active = false
	svc.active = nil
	return ended, nil
}
