package sprite

import "github.com/hubastard/marley/engine/gfx/renderer2d"

// Sheet slices a texture into a grid of equally sized cells, row by row
// from the top left.
type Sheet struct {
	Texture       renderer2d.Texture
	Width, Height int // texture size in pixels
	CellW, CellH  int
	cols, rows    int
}

func NewSheet(tex renderer2d.Texture, width, height, cellW, cellH int) *Sheet {
	s := &Sheet{Texture: tex, Width: width, Height: height, CellW: cellW, CellH: cellH}
	if cellW > 0 && cellH > 0 {
		s.cols = width / cellW
		s.rows = height / cellH
	}
	return s
}

// Len is the number of whole cells in the sheet.
func (s *Sheet) Len() int { return s.cols * s.rows }

// Cell returns the UV rect of cell i. Out of range indices wrap.
func (s *Sheet) Cell(i int) renderer2d.SubTexture2D {
	n := s.Len()
	if n == 0 {
		return renderer2d.SubTexture2D{Texture: s.Texture, U1: 1, V1: 1}
	}
	i = ((i % n) + n) % n
	return renderer2d.FromGrid(s.Texture, i%s.cols, i/s.cols, s.CellW, s.CellH, s.Width, s.Height)
}
