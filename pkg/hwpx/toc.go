package hwpx

import "strings"

// AddTableOfContents appends a table of contents built from the
// headings added before this call. Each entry is a body paragraph
// indented by heading depth, followed by a rule separating the contents
// from the body. Headings added afterwards are not picked up.
func (d *Document) AddTableOfContents(title string) []*Paragraph {
	type entry struct {
		text  string
		level int
	}
	var entries []entry
	for _, b := range d.blocks {
		p, ok := b.(*Paragraph)
		if !ok {
			continue
		}
		if p.StyleIDRef >= StyleH1 && p.StyleIDRef <= StyleH6 {
			entries = append(entries, entry{text: p.Text(), level: p.StyleIDRef - StyleH1})
		}
	}

	var out []*Paragraph
	if title != "" {
		out = append(out, d.AddHeading(title, 1))
	}
	for _, e := range entries {
		out = append(out, d.AddParagraph(strings.Repeat("    ", e.level)+e.text))
	}
	d.AddHorizontalRule()
	d.log.Debug().Int("entries", len(entries)).Msg("table of contents added")
	return out
}
