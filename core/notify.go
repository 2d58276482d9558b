package core

type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

type (
	// Notification is a short-lived message shown to the user after an action.
	Notification struct {
		Title       string
		Description string
		Variant     Variant
	}

	// Notifier is any service that can display notifications.
	Notifier interface {
		Notify(notes ...Notification)
	}
)

func Info(title, desc string) Notification {
	return Notification{Title: title, Description: desc}
}

func Alert(title, desc string) Notification {
	return Notification{Title: title, Description: desc, Variant: VariantDestructive}
}

func (n Notification) IsDestructive() bool { return n.Variant == VariantDestructive }
