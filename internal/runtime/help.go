package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/menuloop/pkg/domain"
)

// BreakLine describes the entry appended for a loop's break trigger.
type BreakLine struct {
	Trigger  string
	Text     string
	LoopName string
}

// HelpText renders the listing printed before each prompt: the
// instructions, one "<trigger>: <name>" line per option and, when set, the
// break entry.
func HelpText(instructions string, options []domain.Option, brk *BreakLine) string {
	var sb strings.Builder
	sb.WriteString(instructions)
	for _, opt := range options {
		fmt.Fprintf(&sb, "\n%s: %s", opt.Trigger, opt.Name)
	}
	if brk != nil {
		fmt.Fprintf(&sb, "\n%s: %s %s", brk.Trigger, brk.Text, brk.LoopName)
	}
	return sb.String()
}
