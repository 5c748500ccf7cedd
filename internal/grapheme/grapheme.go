package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Offset returns the byte offset of the cluster at index n.
// n past the last cluster yields len(text); negative n yields 0.
func Offset(text string, n int) int {
	if n <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == n {
			from, _ := g.Positions()
			return from
		}
		idx++
	}
	return len(text)
}

// Cut splits text before the cluster at index n.
func Cut(text string, n int) (head, tail string) {
	off := Offset(text, n)
	return text[:off], text[off:]
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		w = uniseg.StringWidth(text)
	}
	return w
}

// Truncate cuts text so that it occupies at most width cells. Clusters are
// never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	g := uniseg.NewGraphemes(text)
	used := 0
	var sb strings.Builder
	for g.Next() {
		w := Width(g.Str())
		if used+w > width {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}
