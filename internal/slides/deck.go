// Package slides flattens a serialized presentation — the external reader's
// JSON export of slides, shapes and tables — into one raw text stream for
// the field extractor.
package slides

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Deck mirrors the presentation reader's document shape: slides containing
// page elements, each holding either shape text or a table.
type Deck struct {
	Title  string  `json:"title,omitempty"`
	Slides []Slide `json:"slides"`
}

type Slide struct {
	PageElements []PageElement `json:"pageElements,omitempty"`
}

type PageElement struct {
	Shape *Shape `json:"shape,omitempty"`
	Table *Table `json:"table,omitempty"`
}

type Shape struct {
	Text *TextBody `json:"text,omitempty"`
}

type TextBody struct {
	TextElements []TextElement `json:"textElements,omitempty"`
}

type TextElement struct {
	TextRun *TextRun `json:"textRun,omitempty"`
}

type TextRun struct {
	Content string `json:"content,omitempty"`
}

type Table struct {
	TableRows []TableRow `json:"tableRows,omitempty"`
}

type TableRow struct {
	TableCells []TableCell `json:"tableCells,omitempty"`
}

type TableCell struct {
	Text *TextBody `json:"text,omitempty"`
}

// ParseDeck decodes a serialized deck.
func ParseDeck(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	return &d, nil
}

// RawText concatenates every text run in every shape and table cell, in
// document order, with a slide-boundary marker per slide and a separator
// after each table cell.
func (d *Deck) RawText() string {
	var b strings.Builder

	for i, slide := range d.Slides {
		fmt.Fprintf(&b, "\n=== スライド %d ===\n", i+1)

		for _, el := range slide.PageElements {
			if el.Shape != nil && el.Shape.Text != nil {
				writeRuns(&b, el.Shape.Text, "")
			}
			if el.Table != nil {
				b.WriteString("\n[テーブル]\n")
				for _, row := range el.Table.TableRows {
					for _, cell := range row.TableCells {
						if cell.Text != nil {
							writeRuns(&b, cell.Text, " | ")
						}
					}
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}

func writeRuns(b *strings.Builder, body *TextBody, sep string) {
	for _, te := range body.TextElements {
		if te.TextRun != nil && te.TextRun.Content != "" {
			b.WriteString(te.TextRun.Content)
			b.WriteString(sep)
		}
	}
}
