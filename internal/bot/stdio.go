package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// StdioTransport serves a single local learner over stdin/stdout. It is
// the default transport when no messaging bridge is configured, useful
// for local runs and demos.
type StdioTransport struct {
	userID string
	in     io.Reader
	out    io.Writer
	msgs   chan Message
}

// NewStdioTransport creates a transport reading lines from in and
// writing replies to out. Each line becomes one message from userID.
func NewStdioTransport(userID string, in io.Reader, out io.Writer) *StdioTransport {
	return &StdioTransport{
		userID: userID,
		in:     in,
		out:    out,
		msgs:   make(chan Message),
	}
}

// Start reads input lines until EOF or the context is done, then closes
// the message stream.
func (t *StdioTransport) Start(ctx context.Context) {
	defer close(t.msgs)
	scanner := bufio.NewScanner(t.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case t.msgs <- Message{UserID: t.userID, Text: line}:
		case <-ctx.Done():
			return
		}
	}
}

func (t *StdioTransport) Messages() <-chan Message { return t.msgs }

func (t *StdioTransport) SendText(ctx context.Context, userID, text string) error {
	_, err := fmt.Fprintf(t.out, "%s\n\n", text)
	return err
}

func (t *StdioTransport) SendAudio(ctx context.Context, userID string, audio []byte) error {
	// No audio channel on a terminal.
	return nil
}
