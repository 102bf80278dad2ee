// Package console renders the chat as a human readable transcript.
// Formatting only: nothing here routes or filters messages.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

const blockedIndicator = "(muted)"

// Transcript writes one line per chat action.
// Colours are applied only when enabled, so tests can assert on plain text.
type Transcript struct {
	mu      sync.Mutex
	w       io.Writer
	colours bool
}

func NewTranscript(w io.Writer, colours bool) *Transcript {
	return &Transcript{w: w, colours: colours}
}

func (t *Transcript) Outgoing(name, message string) {
	t.line(color.FgGreen, "[%s] %s", name, message)
}

func (t *Transcript) OutgoingPrivate(name, recipient, message string) {
	t.line(color.FgGreen, "[%s] -> %s: %s", name, recipient, message)
}

func (t *Transcript) Blocked(name string) {
	t.line(color.FgRed, "[%s] %s", name, blockedIndicator)
}

func (t *Transcript) Incoming(name, from, message string) {
	t.line(color.FgWhite, "  -> [%s] from %s: %s", name, from, message)
}

func (t *Transcript) IncomingPrivate(name, from, message string) {
	t.line(color.FgMagenta, "  -> [%s] (private) from %s: %s", name, from, message)
}

func (t *Transcript) Notification(name, text string) {
	t.line(color.FgCyan, "  -> [%s] (info) %s", name, text)
}

// Header prints a section title, e.g. the demo banner.
func (t *Transcript) Header(title string) {
	t.line(color.FgYellow, "=== %s ===", title)
}

func (t *Transcript) line(c color.Color, format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := fmt.Sprintf(format, args...)
	if t.colours {
		text = color.New(c).Render(text)
	}
	_, _ = fmt.Fprintln(t.w, text)
}
