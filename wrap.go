package valfmt

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextWrap wraps the display form of v into lines no wider than width
// terminal columns and joins the lines with a single space. Words wider than
// width are broken. A non-positive width only collapses whitespace.
func TextWrap(v any, width int) string {
	s := display(v)
	if isNull(v) {
		s = ""
	}
	if width <= 0 {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(wrapWords(s, width), " ")
}

func wrapWords(s string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
	}
	add := func(piece string, gap int) {
		if gap > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(piece)
		lineWidth += gap + runewidth.StringWidth(piece)
	}
	for _, word := range strings.Fields(s) {
		for i, piece := range splitHyphens(word) {
			gap := 0
			if i == 0 && line.Len() > 0 {
				gap = 1
			}
			pw := runewidth.StringWidth(piece)
			if lineWidth+gap+pw <= width {
				add(piece, gap)
				continue
			}
			if pw <= width {
				flush()
				add(piece, 0)
				continue
			}
			// Fill what is left of the current line before breaking.
			if left := width - lineWidth - gap; line.Len() > 0 && left > 0 {
				if head := runewidth.Truncate(piece, left, ""); head != "" {
					add(head, gap)
					piece = piece[len(head):]
				}
			}
			flush()
			chunks := wrapCell(piece, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			add(chunks[len(chunks)-1], 0)
		}
	}
	flush()
	return lines
}

// splitHyphens cuts a word after every hyphen that sits between two letters
// or digits, so "well-known" can break as "well-" and "known".
func splitHyphens(word string) []string {
	var pieces []string
	runes := []rune(word)
	start := 0
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] == '-' && isWordRune(runes[i-1]) && isWordRune(runes[i+1]) {
			pieces = append(pieces, string(runes[start:i+1]))
			start = i + 1
		}
	}
	return append(pieces, string(runes[start:]))
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if runewidth.StringWidth(line) == 0 {
			// Advance at least one rune so a wide rune in a narrow column
			// cannot stall the loop.
			line = string([]rune(s)[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}
