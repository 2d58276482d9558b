package class

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/attendance"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Session is a live class. It only exists between Start and End.
type Session struct {
	ID        uuid.UUID                 `json:"id"`
	Subject   string                    `json:"subject"`
	ClassName string                    `json:"class_name"`
	Mode      Mode                      `json:"mode"`
	Location  string                    `json:"location"` // room number or meeting link
	Active    bool                      `json:"active"`
	StartedAt time.Time                 `json:"started_at"` // UTC
	Marks     map[int]attendance.Status `json:"marks"`      // {studentID: status}
}

func (s Session) clone() Session {
	c := s
	c.Marks = make(map[int]attendance.Status, len(s.Marks))
	for id, st := range s.Marks {
		c.Marks[id] = st
	}
	return c
}

// SetupForm is what the class setup screen collects.
type SetupForm struct {
	Mode        string `json:"mode" validate:"required,oneof=online offline"`
	ClassName   string `json:"class_name" validate:"notblank"`
	Subject     string `json:"subject" validate:"notblank"`
	RoomNumber  string `json:"room_number"`  // required when offline
	MeetingLink string `json:"meeting_link"` // required when online
}

func (f *SetupForm) clean() {
	f.Mode = core.CleanString(f.Mode, true /* lower */)
	f.ClassName = core.CleanString(f.ClassName)
	f.Subject = core.CleanString(f.Subject)
	f.RoomNumber = core.CleanString(f.RoomNumber)
	f.MeetingLink = core.CleanString(f.MeetingLink)
}

// Validate reports the first missing piece of information, in the order the setup screen asks for it.
func (f *SetupForm) Validate() error {
	f.clean()
	if err := core.Validate.Struct(f); err != nil {
		return setupError(core.AsValidationError(err, "invalid class setup"))
	}
	return nil
}

// Location is the room number for offline classes and the meeting link for online ones.
func (f SetupForm) Location() string {
	if Mode(f.Mode) == ModeOnline {
		return f.MeetingLink
	}
	return f.RoomNumber
}
