package geom

// Cursor is a CSS-style cursor token.
type Cursor string

const (
	CursorDefault Cursor = "default"
	CursorNWSE    Cursor = "nwse-resize"
	CursorNESW    Cursor = "nesw-resize"
	CursorNS      Cursor = "ns-resize"
	CursorEW      Cursor = "ew-resize"
)

// CursorFor maps a hit-test result to a cursor. It takes the same pair
// HandleAt returns so the two compose directly.
func CursorFor(h Handle, ok bool) Cursor {
	if !ok {
		return CursorDefault
	}
	switch h {
	case NW, SE:
		return CursorNWSE
	case NE, SW:
		return CursorNESW
	case N, S:
		return CursorNS
	case E, W:
		return CursorEW
	default:
		return CursorDefault
	}
}

// Glyph is a single-rune rendering of c for terminals that cannot change the
// pointer shape.
func (c Cursor) Glyph() string {
	switch c {
	case CursorNWSE:
		return "⤡"
	case CursorNESW:
		return "⤢"
	case CursorNS:
		return "↕"
	case CursorEW:
		return "↔"
	default:
		return "↖"
	}
}
