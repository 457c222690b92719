package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/menuloop/pkg/menu"
	"github.com/aretw0/menuloop/pkg/runner"
)

// GenerateMermaid produces a Mermaid flowchart of a menu definition.
// It applies semantic styling:
// - Menu: ((Circle))
// - Action: [[Subroutine]]
// - Constant: [Rectangle]
// - Break: ([Stadium])
// Edges are labelled with the triggers that select them.
func GenerateMermaid(def *menu.Definition) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	writeMenu(&sb, "m0", def)
	return sb.String()
}

func writeMenu(sb *strings.Builder, id string, def *menu.Definition) {
	name := def.Name
	if name == "" {
		name = runner.DefaultName
	}
	fmt.Fprintf(sb, "    %s((\"%s\"))\n", id, escape(name))

	for i, opt := range def.Options {
		optID := fmt.Sprintf("%s_o%d", id, i)
		label := escape(triggerLabel(opt))

		switch {
		case opt.Menu != nil:
			fmt.Fprintf(sb, "    %s -- \"%s\" --> %s\n", id, label, optID)
			writeMenu(sb, optID, opt.Menu)
		case opt.Action != "":
			fmt.Fprintf(sb, "    %s[[\"%s <br/> %s\"]]\n", optID, escape(opt.Name), escape(opt.Action))
			fmt.Fprintf(sb, "    %s -- \"%s\" --> %s\n", id, label, optID)
		default:
			fmt.Fprintf(sb, "    %s[\"%s <br/> = %v\"]\n", optID, escape(opt.Name), escape(fmt.Sprint(opt.Returns)))
			fmt.Fprintf(sb, "    %s -- \"%s\" --> %s\n", id, label, optID)
		}
	}

	brk := runner.DefaultBreak
	if def.Break != nil {
		brk = *def.Break
	}
	if brk != "" {
		text := def.BreakText
		if text == "" {
			text = runner.DefaultBreakText
		}
		fmt.Fprintf(sb, "    %s_brk([\"%s\"])\n", id, escape(text))
		fmt.Fprintf(sb, "    %s -. \"%s\" .-> %s_brk\n", id, escape(brk), id)
	}
}

func triggerLabel(opt menu.OptionDef) string {
	var parts []string
	switch t := opt.Trigger.(type) {
	case nil:
	case []any:
		for _, item := range t {
			parts = append(parts, fmt.Sprint(item))
		}
	default:
		parts = append(parts, fmt.Sprint(t))
	}
	for _, k := range opt.Kinds {
		parts = append(parts, "&lt;"+k+"&gt;")
	}
	return strings.Join(parts, " | ")
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
