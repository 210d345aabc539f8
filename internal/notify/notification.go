package notify

// Variant selects how the client renders a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is the transient toast shown after a user action.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

func Info(title, description string) *Notification {
	return &Notification{Title: title, Description: description, Variant: VariantDefault}
}

func Failure(title, description string) *Notification {
	return &Notification{Title: title, Description: description, Variant: VariantDestructive}
}
