package console

import (
	"bytes"
	"chat-mediator/domain/event"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscript_Lines(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	transcript := NewTranscript(&buf, false)

	// When every kind of line is written
	transcript.Outgoing("Alice", "Hello!")
	transcript.OutgoingPrivate("Alice", "Bob", "Did you see the report?")
	transcript.Blocked("Carlos")
	transcript.Incoming("Bob", "Alice", "Hello!")
	transcript.IncomingPrivate("Bob", "Alice", "Did you see the report?")
	transcript.Notification("Carlos", "Carlos joined the group.")

	// Then they are rendered in order without colour codes
	expected := []string{
		"[Alice] Hello!",
		"[Alice] -> Bob: Did you see the report?",
		"[Carlos] (muted)",
		"  -> [Bob] from Alice: Hello!",
		"  -> [Bob] (private) from Alice: Did you see the report?",
		"  -> [Carlos] (info) Carlos joined the group.",
	}
	req.Equal(expected, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestRenderStats(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	RenderStats(&buf, event.Stats{
		ByType:   map[event.Type]uint64{event.MessageBroadcastType: 2},
		ByAuthor: map[string]uint64{"Alice": 2},
		ByLang:   map[string]uint64{"en": 2},
	})

	out := buf.String()
	req.Contains(out, "MESSAGE_BROADCAST")
	req.Contains(out, "Alice")
	req.Contains(out, "en")
}

func TestTranscript_ColouredKeepsText(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	transcript := NewTranscript(&buf, true)

	// When colours are enabled
	transcript.Incoming("Bob", "Alice", "Hello!")
	transcript.Blocked("Carlos")

	// Then the plain text is still there, one line per call
	out := buf.String()
	req.Contains(out, "  -> [Bob] from Alice: Hello!")
	req.Contains(out, "[Carlos] (muted)")
	req.Equal(2, strings.Count(out, "\n"))
}
