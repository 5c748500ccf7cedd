package editor

import (
	"testing"

	"github.com/iw2rmb/quill/buffer"
)

func TestScroll_MinimalMovement(t *testing.T) {
	size := Size{Width: 10, Height: 5}
	cases := []struct {
		name   string
		cursor buffer.Pos
		off    Offset
		want   Offset
	}{
		{name: "inside window", cursor: buffer.Pos{Col: 3, Line: 2}, off: Offset{}, want: Offset{}},
		{name: "last visible line", cursor: buffer.Pos{Line: 4}, off: Offset{}, want: Offset{}},
		{name: "one below window", cursor: buffer.Pos{Line: 5}, off: Offset{}, want: Offset{Line: 1}},
		{name: "far below window", cursor: buffer.Pos{Line: 40}, off: Offset{Line: 2}, want: Offset{Line: 36}},
		{name: "above window", cursor: buffer.Pos{Line: 3}, off: Offset{Line: 20}, want: Offset{Line: 3}},
		{name: "right of window", cursor: buffer.Pos{Col: 10}, off: Offset{}, want: Offset{Col: 1}},
		{name: "left of window", cursor: buffer.Pos{Col: 2}, off: Offset{Col: 8}, want: Offset{Col: 2}},
		{name: "both axes", cursor: buffer.Pos{Col: 30, Line: 30}, off: Offset{}, want: Offset{Col: 21, Line: 26}},
		{name: "negative offset saturates", cursor: buffer.Pos{Col: 1, Line: 1}, off: Offset{Col: -4, Line: -4}, want: Offset{}},
	}
	for _, tc := range cases {
		if got := Scroll(tc.cursor, size, tc.off); got != tc.want {
			t.Fatalf("%s: Scroll(%v, %v)=%v, want %v", tc.name, tc.cursor, tc.off, got, tc.want)
		}
	}
}

func TestScroll_ZeroSizeKeepsOffset(t *testing.T) {
	off := Offset{Col: 3, Line: 7}
	if got := Scroll(buffer.Pos{Col: 50, Line: 50}, Size{}, off); got != off {
		t.Fatalf("Scroll with zero size=%v, want %v", got, off)
	}
}

func TestScroll_CursorAlwaysVisible(t *testing.T) {
	size := Size{Width: 3, Height: 2}
	off := Offset{}
	for line := 0; line < 12; line++ {
		for col := 0; col < 12; col++ {
			cur := buffer.Pos{Col: (col * 7) % 12, Line: (line * 5) % 12}
			off = Scroll(cur, size, off)
			if cur.Line < off.Line || cur.Line >= off.Line+size.Height {
				t.Fatalf("line %d not visible with offset %v", cur.Line, off)
			}
			if cur.Col < off.Col || cur.Col >= off.Col+size.Width {
				t.Fatalf("col %d not visible with offset %v", cur.Col, off)
			}
		}
	}
}
