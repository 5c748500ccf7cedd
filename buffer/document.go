package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrLoad wraps every failure to read a document from disk.
	ErrLoad = errors.New("buffer: load failed")
	// ErrSave wraps every failure to persist a document.
	ErrSave = errors.New("buffer: save failed")
	// ErrInvalidEncoding reports file content that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("buffer: content is not valid UTF-8")
)

// Document is an ordered sequence of rows, one per line.
//
// An empty document has zero rows, not one empty row.
type Document struct {
	rows []*Row
	name string
}

// New returns an empty, unnamed document.
func New() *Document {
	return &Document{}
}

// NewNamed returns an empty document that saves to path.
func NewNamed(path string) *Document {
	return &Document{name: path}
}

// FromLines builds an unnamed document holding one row per line.
func FromLines(lines []string) *Document {
	d := New()
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(line))
	}
	return d
}

// FromText builds an unnamed document from text using the same line rules as
// Open.
func FromText(text string) *Document {
	return FromLines(splitLines(text))
}

// Open reads path and builds one row per line. "\r\n", "\n" and a lone "\r"
// all terminate a line; a trailing terminator does not add an empty row.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLoad, path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w %q: %w", ErrLoad, path, ErrInvalidEncoding)
	}

	d := FromText(string(data))
	d.name = path
	return d, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Name returns the path the document was opened from, or "" when unnamed.
func (d *Document) Name() string { return d.name }

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

func (d *Document) IsEmpty() bool { return d.Len() == 0 }

// Row returns the row at index i.
func (d *Document) Row(i int) (*Row, bool) {
	if i < 0 || i >= d.Len() {
		return nil, false
	}
	return d.rows[i], true
}

// Lines returns the text of every row in order.
func (d *Document) Lines() []string {
	out := make([]string, 0, d.Len())
	for _, r := range d.rows {
		out = append(out, r.String())
	}
	return out
}

func (d *Document) lineLen(line int) int {
	r, ok := d.Row(line)
	if !ok {
		return 0
	}
	return r.Len()
}

// Insert places ch at p. A '\n' splits the row at p.Col; any other rune is
// inserted into the row. Line == Len() appends a new row. Lines past that are
// ignored.
func (d *Document) Insert(p Pos, ch rune) {
	if p.Line < 0 || p.Line > d.Len() {
		return
	}
	if ch == '\n' {
		d.insertNewline(p)
		return
	}
	if p.Line == d.Len() {
		row := NewRow("")
		row.Insert(0, ch)
		d.rows = append(d.rows, row)
		return
	}
	d.rows[p.Line].Insert(p.Col, ch)
}

func (d *Document) insertNewline(p Pos) {
	if p.Line == d.Len() {
		d.rows = append(d.rows, NewRow(""))
		return
	}
	tail := d.rows[p.Line].Split(p.Col)
	d.rows = append(d.rows, nil)
	copy(d.rows[p.Line+2:], d.rows[p.Line+1:])
	d.rows[p.Line+1] = tail
}

// Delete removes the cluster at p. At the end of any row but the last, the
// next row is joined onto the current one. Delete at the end of the last row
// is a no-op.
func (d *Document) Delete(p Pos) {
	if p.Line < 0 || p.Line >= d.Len() {
		return
	}
	row := d.rows[p.Line]
	if p.Col == row.Len() && p.Line+1 < d.Len() {
		row.Append(d.rows[p.Line+1])
		d.rows = append(d.rows[:p.Line+1], d.rows[p.Line+2:]...)
		return
	}
	row.Delete(p.Col)
}

// Save overwrites the named file with every row followed by "\n". Unnamed
// documents are not written.
func (d *Document) Save() error {
	if d.name == "" {
		return nil
	}

	f, err := os.Create(d.name)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSave, d.name, err)
	}
	w := bufio.NewWriter(f)
	for _, r := range d.rows {
		if _, err := w.Write(r.Bytes()); err != nil {
			_ = f.Close()
			return fmt.Errorf("%w %q: %w", ErrSave, d.name, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			_ = f.Close()
			return fmt.Errorf("%w %q: %w", ErrSave, d.name, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w %q: %w", ErrSave, d.name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSave, d.name, err)
	}
	return nil
}
