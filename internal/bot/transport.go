package bot

import "context"

// Message is one inbound chat message. Voice notes carry Audio and an
// empty Text; the bot transcribes before handling.
type Message struct {
	UserID    string
	Text      string
	Audio     []byte
	AudioMIME string
}

// Transport is the chat channel the bot serves. Implementations bridge
// to a messaging provider; tests use ChanTransport.
type Transport interface {
	// Messages is the inbound stream. The transport closes it on
	// shutdown.
	Messages() <-chan Message

	// SendText delivers a text message to a user.
	SendText(ctx context.Context, userID, text string) error

	// SendAudio delivers a voice reply. Implementations without audio
	// support may silently drop it.
	SendAudio(ctx context.Context, userID string, audio []byte) error
}

// ChanTransport is an in-memory Transport for tests and local runs.
type ChanTransport struct {
	In   chan Message
	Sent chan SentMessage
}

// SentMessage records one outbound message.
type SentMessage struct {
	UserID string
	Text   string
	Audio  []byte
}

// NewChanTransport creates a transport with buffered channels.
func NewChanTransport(buf int) *ChanTransport {
	return &ChanTransport{
		In:   make(chan Message, buf),
		Sent: make(chan SentMessage, buf),
	}
}

func (t *ChanTransport) Messages() <-chan Message { return t.In }

func (t *ChanTransport) SendText(ctx context.Context, userID, text string) error {
	select {
	case t.Sent <- SentMessage{UserID: userID, Text: text}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *ChanTransport) SendAudio(ctx context.Context, userID string, audio []byte) error {
	select {
	case t.Sent <- SentMessage{UserID: userID, Audio: audio}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
