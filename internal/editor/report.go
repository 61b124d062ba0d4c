package editor

// Report is a user-facing error surfaced through the host's callback.
// The core never shows UI; Alert advises the host that the user should
// see this one.
type Report struct {
	// Code groups related failures ("load", "clipboard", "command").
	Code string

	// Message is a short human-readable description.
	Message string

	// Info carries free-form diagnostic detail.
	Info map[string]string

	// Alert advises the host to show the report to the user.
	Alert bool
}

// ReportFunc receives Reports. It may be called from the engine goroutine
// and must not block.
type ReportFunc func(Report)

// Report codes.
const (
	CodeLoad      = "load"
	CodeClipboard = "clipboard"
	CodeCommand   = "command"
)

// alertCommands are user-initiated inserts whose failure the user should
// see rather than silently losing content.
var alertCommands = map[string]bool{
	"insertImage": true,
	"modifyImage": true,
	"insertLink":  true,
	"insertTable": true,
	"pasteHTML":   true,
	"pasteText":   true,
}
