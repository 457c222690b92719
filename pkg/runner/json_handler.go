package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Message kinds emitted by JSONHandler.
const (
	MessageContent = "content"
	MessageListing = "listing"
	MessageSystem  = "system"
	MessageResult  = "result"
)

// Message is one JSON line written by JSONHandler.
type Message struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Value any    `json:"value,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Each output is one Message per line. Each input line is either a JSON
// string ("add 1 2") or raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, content string) error {
	return h.Encoder.Encode(Message{Type: MessageContent, Text: content})
}

func (h *JSONHandler) Listing(ctx context.Context, text string) error {
	return h.Encoder.Encode(Message{Type: MessageListing, Text: text})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: MessageSystem, Text: msg})
}

// Result emits the value a session ended with.
func (h *JSONHandler) Result(v any) error {
	return h.Encoder.Encode(Message{Type: MessageResult, Value: v})
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}

	text = strings.TrimSpace(text)

	// Only a JSON string is unquoted; null, numbers and the like stay raw
	// text so they never turn into an empty line.
	if strings.HasPrefix(text, `"`) {
		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}
	}

	// Fallback: raw text (e.g. if they just sent plain text)
	return SanitizeInput(text)
}
