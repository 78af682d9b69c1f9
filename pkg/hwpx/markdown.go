package hwpx

import (
	"regexp"
	"strings"
)

// Regex-based markdown parser covering the subset the document API can
// express: ATX headings, bold, italic, inline code, strikethrough,
// links, GFM tables, fenced code blocks, bullet and ordered lists with
// two nesting levels, horizontal rules and blockquotes.

// MarkdownNode is one block-level node of the parsed input.
type MarkdownNode interface {
	isMarkdownNode()
}

// MarkdownHeading is an ATX heading (# to ######).
type MarkdownHeading struct {
	Level int
	Text  string
	Spans []Span
}

// MarkdownParagraph is a run of contiguous text lines.
type MarkdownParagraph struct {
	Spans []Span
}

// MarkdownTable is a GFM pipe table.
type MarkdownTable struct {
	Headers []string
	Rows    [][]string
}

// MarkdownCodeBlock is a fenced code block.
type MarkdownCodeBlock struct {
	Code     string
	Language string
}

// MarkdownList is a bullet or ordered list with per-item nesting.
type MarkdownList struct {
	Ordered bool
	Items   []ListItem
}

// MarkdownHorizontalRule is a thematic break (---, ***, ___).
type MarkdownHorizontalRule struct{}

// MarkdownBlockquote is a block quote; consecutive quote lines join
// into one node.
type MarkdownBlockquote struct {
	Spans []Span
}

func (*MarkdownHeading) isMarkdownNode()        {}
func (*MarkdownParagraph) isMarkdownNode()      {}
func (*MarkdownTable) isMarkdownNode()          {}
func (*MarkdownCodeBlock) isMarkdownNode()      {}
func (*MarkdownList) isMarkdownNode()           {}
func (*MarkdownHorizontalRule) isMarkdownNode() {}
func (*MarkdownBlockquote) isMarkdownNode()     {}

var (
	reHeading    = regexp.MustCompile(`^(#{1,6})\s+(.+?)(?:\s+#+)?$`)
	reHR         = regexp.MustCompile(`^(?:---+|\*\*\*+|___+)\s*$`)
	reFenceStart = regexp.MustCompile("^```(\\w*)\\s*$")
	reFenceEnd   = regexp.MustCompile("^```\\s*$")
	reBullet     = regexp.MustCompile(`^(\s*)[-*+]\s+(.+)$`)
	reOrdered    = regexp.MustCompile(`^(\s*)\d+[.)]\s+(.+)$`)
	reTableRow   = regexp.MustCompile(`^\|(.+)\|\s*$`)
	reTableSep   = regexp.MustCompile(`^\|[\s:]*-+[\s:]*`)
	reBlockquote = regexp.MustCompile(`^>\s*(.*)`)

	// Inline constructs in priority order: link, code, strikethrough,
	// bold italic, bold, italic. Text between matches is plain.
	reInline = regexp.MustCompile(
		`\[([^\]]+)\]\(([^)]+)\)` + // 1,2: [text](url)
			"|`([^`]+)`" + // 3: inline code
			`|~~(.+?)~~` + // 4: strikethrough
			`|\*\*\*(.+?)\*\*\*` + // 5: bold italic
			`|\*\*(.+?)\*\*` + // 6: bold
			`|\*(.+?)\*`, // 7: italic
	)
)

// ParseInline splits a line into formatted spans. Text that matches no
// construct passes through as plain spans.
func ParseInline(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range reInline.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		last = m[1]
		switch {
		case m[2] >= 0:
			spans = append(spans, Span{Text: text[m[2]:m[3]], Link: text[m[4]:m[5]]})
		case m[6] >= 0:
			spans = append(spans, Span{Text: text[m[6]:m[7]], Code: true})
		case m[8] >= 0:
			spans = append(spans, Span{Text: text[m[8]:m[9]], Strike: true})
		case m[10] >= 0:
			spans = append(spans, Span{Text: text[m[10]:m[11]], Bold: true, Italic: true})
		case m[12] >= 0:
			spans = append(spans, Span{Text: text[m[12]:m[13]], Bold: true})
		case m[14] >= 0:
			spans = append(spans, Span{Text: text[m[14]:m[15]], Italic: true})
		}
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	return spans
}

// ParseMarkdown parses markdown into block nodes.
func ParseMarkdown(text string) []MarkdownNode {
	lines := strings.Split(text, "\n")
	var nodes []MarkdownNode
	i := 0

	for i < len(lines) {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		if m := reFenceStart.FindStringSubmatch(line); m != nil {
			var codeLines []string
			i++
			for i < len(lines) && !reFenceEnd.MatchString(lines[i]) {
				codeLines = append(codeLines, lines[i])
				i++
			}
			i++ // closing fence
			nodes = append(nodes, &MarkdownCodeBlock{
				Code:     strings.Join(codeLines, "\n"),
				Language: m[1],
			})
			continue
		}

		if reHR.MatchString(line) {
			nodes = append(nodes, &MarkdownHorizontalRule{})
			i++
			continue
		}

		if m := reHeading.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[2])
			nodes = append(nodes, &MarkdownHeading{
				Level: len(m[1]),
				Text:  text,
				Spans: ParseInline(text),
			})
			i++
			continue
		}

		if m := reTableRow.FindStringSubmatch(line); m != nil {
			headers := splitTableCells(m[1])
			i++
			if i < len(lines) && reTableSep.MatchString(lines[i]) {
				i++
			}
			var rows [][]string
			for i < len(lines) {
				rm := reTableRow.FindStringSubmatch(lines[i])
				if rm == nil {
					break
				}
				rows = append(rows, splitTableCells(rm[1]))
				i++
			}
			nodes = append(nodes, &MarkdownTable{Headers: headers, Rows: rows})
			continue
		}

		if reBullet.MatchString(line) {
			items, next := collectListItems(lines, i, reBullet)
			i = next
			nodes = append(nodes, &MarkdownList{Ordered: false, Items: items})
			continue
		}

		if reOrdered.MatchString(line) {
			items, next := collectListItems(lines, i, reOrdered)
			i = next
			nodes = append(nodes, &MarkdownList{Ordered: true, Items: items})
			continue
		}

		if reBlockquote.MatchString(line) {
			var quoteLines []string
			for i < len(lines) {
				qm := reBlockquote.FindStringSubmatch(lines[i])
				if qm == nil {
					break
				}
				quoteLines = append(quoteLines, qm[1])
				i++
			}
			nodes = append(nodes, &MarkdownBlockquote{
				Spans: ParseInline(strings.Join(quoteLines, " ")),
			})
			continue
		}

		// Plain paragraph: contiguous lines up to the next blank line or
		// block construct.
		var paraLines []string
		for i < len(lines) {
			if strings.TrimSpace(lines[i]) == "" {
				break
			}
			if len(paraLines) > 0 && isBlockStart(lines[i]) {
				break
			}
			paraLines = append(paraLines, lines[i])
			i++
		}
		if len(paraLines) > 0 {
			nodes = append(nodes, &MarkdownParagraph{
				Spans: ParseInline(strings.Join(paraLines, " ")),
			})
		}
	}

	return nodes
}

func isBlockStart(line string) bool {
	return reHeading.MatchString(line) ||
		reHR.MatchString(line) ||
		reFenceStart.MatchString(line) ||
		reBullet.MatchString(line) ||
		reOrdered.MatchString(line) ||
		reTableRow.MatchString(line) ||
		reBlockquote.MatchString(line)
}

func splitTableCells(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// collectListItems gathers consecutive list lines starting at index
// start. Two indent spaces make one nesting level, capped at
// MaxListLevel.
func collectListItems(lines []string, start int, re *regexp.Regexp) ([]ListItem, int) {
	var items []ListItem
	i := start
	for i < len(lines) {
		m := re.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		level := len(m[1]) / 2
		if level > MaxListLevel {
			level = MaxListLevel
		}
		items = append(items, ListItem{Spans: ParseInline(m[2]), Level: level})
		i++
	}
	return items, i
}
