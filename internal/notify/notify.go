// Package notify holds the user-facing notification messages. Every
// message is static and tied to one action outcome; views look it up by
// key and never build text of their own.
package notify

// Level is the severity of a notification.
type Level int

const (
	Success Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Key identifies a catalog message.
type Key string

const (
	LoginSuccess    Key = "login.success"
	LoginFailed     Key = "login.failed"
	RegisterSuccess Key = "register.success"
	RegisterFailed  Key = "register.failed"
	LogoutSuccess   Key = "logout.success"
	LogoutFailed    Key = "logout.failed"
	SessionRequired Key = "session.required"

	ChecklistLoadFailed   Key = "checklist.load_failed"
	ChecklistCreated      Key = "checklist.created"
	ChecklistCreateFailed Key = "checklist.create_failed"
	ChecklistDeleted      Key = "checklist.deleted"
	ChecklistDeleteFailed Key = "checklist.delete_failed"
	ChecklistBlankName    Key = "checklist.blank_name"

	ItemLoadFailed   Key = "item.load_failed"
	ItemCreated      Key = "item.created"
	ItemCreateFailed Key = "item.create_failed"
	ItemToggleFailed Key = "item.toggle_failed"
	ItemRenamed      Key = "item.renamed"
	ItemRenameFailed Key = "item.rename_failed"
	ItemDeleted      Key = "item.deleted"
	ItemDeleteFailed Key = "item.delete_failed"
	ItemBlankName    Key = "item.blank_name"
)

// Notification is one message ready to show.
type Notification struct {
	Level Level
	Key   Key
	Text  string
}
