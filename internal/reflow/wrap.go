package reflow

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapComment greedily packs words onto comment lines of the form
// leading + "% " + text, keeping each line within limit display columns.
// A word that lands exactly on the limit still fits; a word that cannot
// fit even alone is emitted on its own line unbroken.
func wrapComment(leading string, words []string, limit int) []string {
	prefix := leading + "% "
	prefixWidth := runewidth.StringWidth(prefix)

	var (
		lines []string
		cur   strings.Builder
	)
	width := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
			width = prefixWidth + w
		case width+1+w <= limit:
			cur.WriteByte(' ')
			cur.WriteString(word)
			width += 1 + w
		default:
			lines = append(lines, prefix+cur.String())
			cur.Reset()
			cur.WriteString(word)
			width = prefixWidth + w
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, prefix+cur.String())
	}
	return lines
}
