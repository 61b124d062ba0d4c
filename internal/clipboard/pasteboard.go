package clipboard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

// Pasteboard reads the current clipboard contents.
type Pasteboard interface {
	Read() (Contents, error)
}

// SystemPasteboard reads the platform clipboard. The platform text board
// carries plain text only, so URL and HTML entries are derived
// heuristically from the text itself; image and RTF entries never appear
// here and come from hosts supplying their own Pasteboard.
type SystemPasteboard struct{}

// Read implements Pasteboard.
func (SystemPasteboard) Read() (Contents, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return Contents{}, fmt.Errorf("clipboard: reading system pasteboard: %w", err)
	}
	c := Contents{Text: text}
	if isBareURL(text) {
		c.URL = text
	} else if looksLikeHTML(text) {
		c.HTML = text
	}
	return c, nil
}

// StaticPasteboard returns fixed contents. Used by tests and by hosts
// that capture pasteboard state through platform APIs of their own.
type StaticPasteboard struct {
	Contents Contents
	Err      error
}

// Read implements Pasteboard.
func (p StaticPasteboard) Read() (Contents, error) {
	return p.Contents, p.Err
}

// isBareURL reports whether text is a single absolute http(s) URL.
func isBareURL(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, " \t\n\r") {
		return false
	}
	u, err := url.Parse(text)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// looksLikeHTML reports whether text reads as an HTML fragment.
func looksLikeHTML(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "<") && strings.Contains(text, ">")
}
