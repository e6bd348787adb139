// File path: internal/compose/document.go

// Package compose turns a frozen answer set into the sectioned narrative
// document of the dossier. Every section builder is a pure function of the
// answers and the generation date; composing twice from the same input yields
// identical output.
package compose

import (
	"strings"
	"time"
)

// BlockKind distinguishes how a block is laid out by the rendering primitive.
type BlockKind string

const (
	// BlockParagraph is running prose.
	BlockParagraph BlockKind = "paragraph"
	// BlockBullet is one item of a bulleted list.
	BlockBullet BlockKind = "bullet"
	// BlockCallout is a distinguished quoted block carrying the guardian's
	// own words. Callouts are never merged into surrounding prose.
	BlockCallout BlockKind = "callout"
)

type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

type Section struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Document is the assembled narrative. Pagination and typography are the
// concern of the layout primitive downstream; this is ordered content only.
type Document struct {
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}

func paragraph(text string) Block { return Block{Kind: BlockParagraph, Text: text} }
func bullet(text string) Block    { return Block{Kind: BlockBullet, Text: text} }
func callout(text string) Block   { return Block{Kind: BlockCallout, Text: text} }

// Render flattens the document to plain text for download. The generation
// date stamp is the only part that varies between runs over the same answers.
func (d Document) Render() string {
	var b strings.Builder
	b.WriteString("SYNTHÈSE DU DOSSIER\n")
	b.WriteString("Document établi le " + d.GeneratedAt.Format("02/01/2006") + "\n")
	for _, section := range d.Sections {
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(section.Title))
		b.WriteString("\n")
		for _, block := range section.Blocks {
			switch block.Kind {
			case BlockBullet:
				b.WriteString("  - " + block.Text + "\n")
			case BlockCallout:
				b.WriteString("  « " + block.Text + " »\n")
			default:
				b.WriteString(block.Text + "\n")
			}
		}
	}
	return b.String()
}
