package model

import (
	"fmt"
	"io"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// MaxRenderArea caps the bounding box a TerminalRenderer will draw cell by cell
	MaxRenderArea = 120 * 60
)

// TerminalRenderer draws the bounding box of a world's live cells as text
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the world to the renderer's writer
func (r *TerminalRenderer) Display(w World) error {
	_, err := io.WriteString(r.Out, Render(w))
	return err
}

// Render returns the text drawing of a world, one line per row from MinY to MaxY
func Render(w World) string {
	b, ok := w.Bounds()
	if !ok {
		return "(no live cells)\n"
	}
	if b.Width()*b.Height() > MaxRenderArea || b.Width() <= 0 || b.Height() <= 0 {
		return fmt.Sprintf("(%dx%d area too large to draw, population %d)\n",
			b.Width(), b.Height(), w.Population())
	}

	var sb strings.Builder
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			if w.cells.Contains(C(x, y)) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
