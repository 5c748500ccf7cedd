package editor

import "github.com/iw2rmb/quill/buffer"

// Size is the text area of the editor in cells: terminal size minus the
// status and message bars.
type Size struct {
	Width  int
	Height int
}

// Offset is the document coordinate shown in the top-left cell.
type Offset struct {
	Col  int
	Line int
}

// Scroll returns the offset that keeps cur visible in a window of the given
// size. The window moves only as far as needed and never recenters. An axis
// with no extent keeps its offset.
func Scroll(cur buffer.Pos, size Size, off Offset) Offset {
	return Offset{
		Col:  scrollAxis(cur.Col, size.Width, off.Col),
		Line: scrollAxis(cur.Line, size.Height, off.Line),
	}
}

func scrollAxis(pos, extent, off int) int {
	off = maxInt(off, 0)
	pos = maxInt(pos, 0)
	if extent <= 0 {
		return off
	}
	if pos < off {
		return pos
	}
	if pos >= off+extent {
		return pos - extent + 1
	}
	return off
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
