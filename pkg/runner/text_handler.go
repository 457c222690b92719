package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPrompt is printed before each read.
const DefaultPrompt = "\n> "

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Prompt   string

	// Styler decorates system messages (e.g. colour). Optional.
	Styler func(string) string
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerPrompt overrides DefaultPrompt.
func WithTextHandlerPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// WithTextHandlerStyler configures the decoration of system messages.
func WithTextHandlerStyler(styler func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Styler = styler
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, content string) error {
	output := content
	if h.Renderer != nil {
		rendered, err := h.Renderer(content)
		if err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n"))
	return err
}

func (h *TextHandler) Listing(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(h.Writer, text)
	return err
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	if h.Styler != nil {
		msg = h.Styler(msg)
	}
	_, err := fmt.Fprintf(h.Writer, "\n%s\n", msg)
	return err
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(h.Writer, h.Prompt)

		text, err := h.Reader.ReadString('\n')
		if err != nil {
			// A final line without a newline is still a line.
			if err == io.EOF && text != "" {
				err = nil
			} else {
				return "", err
			}
		}

		clean, err := SanitizeInput(strings.TrimRight(text, "\r\n"))
		if err != nil {
			// User Feedback: Prompt retry
			fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		return clean, nil
	}
}
