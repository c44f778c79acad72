package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// DisplayWidth returns the number of terminal cells a string occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts a string to at most w cells, appending an ellipsis when
// anything was removed. Cutting happens on grapheme cluster boundaries so
// combining sequences and emoji are never split.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if DisplayWidth(s) <= w {
		return s
	}
	if w == 1 {
		return ellipsis
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := runewidth.StringWidth(cluster)
		if used+cw > w-1 {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadRight extends a string with spaces to exactly w cells, truncating
// when it is too long.
func PadRight(s string, w int) string {
	dw := DisplayWidth(s)
	if dw > w {
		return Truncate(s, w)
	}
	return s + strings.Repeat(" ", w-dw)
}

// WrapText breaks a string into lines of at most width display cells,
// preferring word boundaries. Words wider than a full line hard-break on
// grapheme cluster boundaries. An empty string yields a single empty line.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range words {
		ww := DisplayWidth(word)
		if lineW > 0 {
			if lineW+1+ww <= width {
				line.WriteByte(' ')
				line.WriteString(word)
				lineW += 1 + ww
				continue
			}
			flush()
		}
		for ww > width {
			headW := 0
			headLen := 0
			for _, cluster := range Graphemes(word) {
				cw := runewidth.StringWidth(cluster)
				if headW > 0 && headW+cw > width {
					break
				}
				headW += cw
				headLen += len(cluster)
				if headW >= width {
					break
				}
			}
			lines = append(lines, word[:headLen])
			word = word[headLen:]
			ww -= headW
		}
		line.WriteString(word)
		lineW = ww
	}
	if lineW > 0 {
		flush()
	}
	return lines
}

// Graphemes splits a string into grapheme clusters.
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
