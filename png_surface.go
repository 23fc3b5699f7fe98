package main

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"scrumboard/board"
)

const pngBackground = "#1b1b1b"

// pngSurface draws the board with gg for image export.
type pngSurface struct {
	dc *gg.Context
}

func newPNGSurface(width, height int) (*pngSurface, error) {
	dc := gg.NewContext(width, height)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	return &pngSurface{dc: dc}, nil
}

func (s *pngSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *pngSurface) Clear() {
	s.dc.SetHexColor(pngBackground)
	s.dc.Clear()
}

func (s *pngSurface) FillRect(x, y, w, h float64, color string) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetHexColor(color)
	s.dc.Fill()
}

func (s *pngSurface) DrawLine(x1, y1, x2, y2 float64, pen board.Pen) {
	s.setStroke(pen)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
	s.dc.SetDash()
}

func (s *pngSurface) DrawArc(cx, cy, r, a0, a1 float64, pen board.Pen) {
	s.dc.NewSubPath()
	s.dc.DrawArc(cx, cy, r, a0, a1)
	if pen.Fill != "" {
		s.dc.SetHexColor(pen.Fill)
		if pen.Color != "" {
			s.dc.FillPreserve()
		} else {
			s.dc.Fill()
			return
		}
	}
	if pen.Color == "" {
		s.dc.ClearPath()
		return
	}
	s.setStroke(pen)
	s.dc.Stroke()
	s.dc.SetDash()
}

func (s *pngSurface) DrawText(text string, x, y float64, color string) {
	s.dc.SetHexColor(color)
	s.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

func (s *pngSurface) setStroke(pen board.Pen) {
	s.dc.SetHexColor(pen.Color)
	width := pen.Width
	if width <= 0 {
		width = 1
	}
	s.dc.SetLineWidth(width)
	if pen.Dashed {
		s.dc.SetDash(10, 7)
	} else {
		s.dc.SetDash()
	}
}

// renderPNG draws b into a fresh image and writes it to filename.
func renderPNG(b *board.Board, filename string, width, height int) error {
	surface, err := newPNGSurface(width, height)
	if err != nil {
		return err
	}
	b.Render(surface)
	return surface.dc.SavePNG(filename)
}
