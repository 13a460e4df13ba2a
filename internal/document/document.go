// Package document models generated documents as a flat sequence of typed
// blocks and renders them. Generators describe what a document says by
// appending blocks; Markdown and HTML decide how it looks.
package document

import "strings"

// Kind is the type of a block.
type Kind int

const (
	// Heading is a section title; Block.Level is 1, 2 or 3.
	Heading Kind = iota
	// Paragraph is free text. Embedded newlines are kept as soft line breaks.
	Paragraph
	// Item is an unordered list entry; Block.Level is the nesting depth (0 = top).
	Item
	// Checkbox is an unticked task-list entry.
	Checkbox
	// Step is an ordered list entry. Consecutive steps are numbered from 1.
	Step
)

// Block is a single node of a document.
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Document is an ordered list of blocks. The zero value is an empty document
// ready to be appended to.
type Document struct {
	Blocks []Block
}

// Title returns the text of the first level-1 heading, or "" if there is none.
func (d *Document) Title() string {
	for _, b := range d.Blocks {
		if b.Kind == Heading && b.Level == 1 {
			return b.Text
		}
	}
	return ""
}

// H1 appends a level-1 heading.
func (d *Document) H1(text string) *Document { return d.heading(1, text) }

// H2 appends a level-2 heading.
func (d *Document) H2(text string) *Document { return d.heading(2, text) }

// H3 appends a level-3 heading.
func (d *Document) H3(text string) *Document { return d.heading(3, text) }

func (d *Document) heading(level int, text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: Heading, Level: level, Text: text})
	return d
}

// P appends a paragraph.
func (d *Document) P(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: Paragraph, Text: text})
	return d
}

// Item appends a top-level unordered list entry.
func (d *Document) Item(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: Item, Text: text})
	return d
}

// SubItem appends an unordered entry nested one level under the previous item.
func (d *Document) SubItem(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: Item, Level: 1, Text: text})
	return d
}

// Check appends an unticked checkbox entry.
func (d *Document) Check(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: Checkbox, Text: text})
	return d
}

// Step appends an ordered list entry.
func (d *Document) Step(text string) *Document {
	d.Blocks = append(d.Blocks, Block{Kind: Step, Text: text})
	return d
}

// Items appends one unordered entry per element of texts.
func (d *Document) Items(texts ...string) *Document {
	for _, t := range texts {
		d.Item(t)
	}
	return d
}

// SplitList splits s on ";" and returns the trimmed, non-empty pieces.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
