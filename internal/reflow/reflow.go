package reflow

import (
	"strings"
	"unicode"
)

type lineKind int

const (
	lineCode lineKind = iota
	lineComment
	lineBlankComment
	lineIndentedComment
)

// classified is one source line resolved to its reflow role.
type classified struct {
	kind    lineKind
	leading string // whitespace before the % marker
	body    string // text after the marker, trailing whitespace stripped
}

func classifyLine(line string, opts Options) classified {
	stripped := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(stripped, "%") {
		return classified{kind: lineCode}
	}
	leading := line[:len(line)-len(stripped)]
	// Only the marker itself is removed so percent signs inside the
	// comment text are left alone.
	body := strings.TrimRight(stripped[1:], " \t\r")
	inner := len(body) - len(strings.TrimLeft(body, " \t"))

	switch {
	case inner == 0:
		// Either an empty comment or text flush against the marker;
		// neither is a reflow candidate.
		return classified{kind: lineBlankComment, leading: leading, body: body}
	case opts.IgnoreIndented && inner >= 2:
		return classified{kind: lineIndentedComment, leading: leading, body: body}
	default:
		return classified{kind: lineComment, leading: leading, body: body}
	}
}

// block accumulates the word stream of consecutive reflow-eligible
// comment lines. The leading whitespace of the first line indents every
// wrapped output line of the block.
type block struct {
	leading string
	words   []string
}

func (b *block) empty() bool { return len(b.words) == 0 }

func (b *block) add(cl classified) {
	if b.empty() {
		b.leading = cl.leading
	}
	b.words = append(b.words, strings.Fields(cl.body)...)
}

func (b *block) flushInto(out []string, limit int) []string {
	if b.empty() {
		return out
	}
	out = append(out, wrapComment(b.leading, b.words, limit)...)
	b.words = b.words[:0]
	return out
}

func reflowDocument(text string, opts Options) string {
	if text == "" {
		return ""
	}

	hasTrailingNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if hasTrailingNewline && len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	out := make([]string, 0, len(lines))
	var b block
	for _, line := range lines {
		cl := classifyLine(line, opts)
		if cl.kind != lineComment {
			out = b.flushInto(out, opts.LineLength)
			out = append(out, line)
			continue
		}
		if !b.empty() && b.leading != cl.leading {
			// Comment run changed depth, so the open block ends here.
			out = b.flushInto(out, opts.LineLength)
		}
		if opts.AlternateCapitalHandling && !b.empty() && startsUpper(cl.body) {
			out = b.flushInto(out, opts.LineLength)
		}
		b.add(cl)
	}
	out = b.flushInto(out, opts.LineLength)

	result := strings.Join(out, "\n")
	if hasTrailingNewline {
		result += "\n"
	}
	return result
}

func startsUpper(body string) bool {
	for _, r := range strings.TrimLeft(body, " \t") {
		return unicode.IsUpper(r)
	}
	return false
}
