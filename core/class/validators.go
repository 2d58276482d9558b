package class

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mahudhurio/core"
)

var (
	// errors, titled like the setup screen's notices
	ErrMissingInformation = errors.New("Missing Information")
	ErrMissingRoomNumber  = errors.New("Missing Room Number")
	ErrMissingMeetingLink = errors.New("Missing Meeting Link")
	ErrInvalidMeetingLink = errors.New("Invalid Meeting Link")

	roomRequiredTag  = "room_required"
	roomRequiredText = "please provide room number for offline class"

	linkRequiredTag  = "link_required"
	linkRequiredText = "please provide meeting link for online class"

	linkURLTag  = "link_url"
	linkURLText = "meeting link must be a valid URL"
)

func init() {
	core.Validate.RegisterStructValidation(setupFormStructValidation, SetupForm{})
	core.RegisterCustomTranslation(roomRequiredTag, roomRequiredText)
	core.RegisterCustomTranslation(linkRequiredTag, linkRequiredText)
	core.RegisterCustomTranslation(linkURLTag, linkURLText)
}

// setupFormStructValidation requires the location matching the class mode.
func setupFormStructValidation(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(SetupForm)
	if !ok {
		return
	}
	switch Mode(f.Mode) {
	case ModeOffline:
		if f.RoomNumber == "" {
			sl.ReportError(f.RoomNumber, "room_number", "RoomNumber", roomRequiredTag, "")
		}
	case ModeOnline:
		if f.MeetingLink == "" {
			sl.ReportError(f.MeetingLink, "meeting_link", "MeetingLink", linkRequiredTag, "")
		} else if err := core.Validate.Var(f.MeetingLink, "url"); err != nil {
			sl.ReportError(f.MeetingLink, "meeting_link", "MeetingLink", linkURLTag, "")
		}
	}
}

// setupError picks the notice for a failed setup form: missing basics first, then the location.
func setupError(err error) error {
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		return err
	}
	title := ErrMissingInformation
	var basicsMissing bool
	for _, fld := range vErr.Fields {
		switch fld.Field {
		case "mode", "class_name", "subject":
			basicsMissing = true
		}
	}
	if !basicsMissing {
		for _, fld := range vErr.Fields {
			switch fld.Error {
			case roomRequiredText:
				title = ErrMissingRoomNumber
			case linkRequiredText:
				title = ErrMissingMeetingLink
			case linkURLText:
				title = ErrInvalidMeetingLink
			}
		}
	}
	vErr.Err = title
	return vErr
}
