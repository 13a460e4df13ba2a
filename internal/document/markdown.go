package document

import (
	"strconv"
	"strings"
)

// Markdown renders d into the lightweight markdown subset the front-ends
// understand: "#" to "###" headings, "- " items (two spaces of indent per
// nesting level), "- [ ] " checkboxes, "N. " steps and paragraphs.
//
// Consecutive list entries are separated by a single newline so they form one
// list; every other pair of blocks is separated by a blank line. The output
// always ends with exactly one newline, and is empty for an empty document.
func Markdown(d Document) string {
	if len(d.Blocks) == 0 {
		return ""
	}

	var sb strings.Builder
	step := 0
	for i, b := range d.Blocks {
		if i > 0 {
			if isList(d.Blocks[i-1].Kind) && isList(b.Kind) {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		if b.Kind == Step {
			step++
		} else {
			step = 0
		}
		sb.WriteString(renderBlock(b, step))
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderBlock(b Block, step int) string {
	switch b.Kind {
	case Heading:
		level := min(max(b.Level, 1), 3)
		return strings.Repeat("#", level) + " " + b.Text
	case Item:
		return strings.Repeat("  ", max(b.Level, 0)) + "- " + b.Text
	case Checkbox:
		return "- [ ] " + b.Text
	case Step:
		return strconv.Itoa(step) + ". " + b.Text
	default:
		return b.Text
	}
}

func isList(k Kind) bool {
	return k == Item || k == Checkbox || k == Step
}
