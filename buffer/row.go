package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// Row owns the text of a single line.
//
// length caches the grapheme cluster count of text and is recomputed after
// every mutation.
type Row struct {
	text   string
	length int
}

func NewRow(text string) *Row {
	r := &Row{text: text}
	r.updateLen()
	return r
}

func (r *Row) updateLen() {
	r.length = grapheme.Count(r.text)
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return r.length }

func (r *Row) IsEmpty() bool { return r.length == 0 }

func (r *Row) String() string { return r.text }

// Bytes returns the raw UTF-8 bytes of the row, without a line terminator.
func (r *Row) Bytes() []byte { return []byte(r.text) }

// Insert places ch before the cluster at index at, or appends it when at is
// past the end.
func (r *Row) Insert(at int, ch rune) {
	if at >= r.length {
		r.text += string(ch)
	} else {
		head, tail := grapheme.Cut(r.text, at)
		var sb strings.Builder
		sb.Grow(len(r.text) + 4)
		sb.WriteString(head)
		sb.WriteRune(ch)
		sb.WriteString(tail)
		r.text = sb.String()
	}
	r.updateLen()
}

// Delete removes the cluster at index at. Out-of-range indices are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.length {
		return
	}
	head, rest := grapheme.Cut(r.text, at)
	_, tail := grapheme.Cut(rest, 1)
	r.text = head + tail
	r.updateLen()
}

// Split truncates r to its first at clusters and returns the remainder as a
// new Row.
func (r *Row) Split(at int) *Row {
	at = clampInt(at, 0, r.length)
	head, tail := grapheme.Cut(r.text, at)
	r.text = head
	r.updateLen()
	return NewRow(tail)
}

// Append joins other onto the end of r.
func (r *Row) Append(other *Row) {
	if other == nil {
		return
	}
	r.text += other.text
	r.updateLen()
}

// Render returns the clusters in [start, end) for display. Both bounds are
// clamped to the row and a tab renders as a single space.
func (r *Row) Render(start, end int) string {
	end = clampInt(end, 0, r.length)
	start = clampInt(start, 0, end)
	if start == end {
		return ""
	}

	var sb strings.Builder
	for _, g := range grapheme.Split(r.text)[start:end] {
		if g == "\t" {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(g)
	}
	return sb.String()
}
