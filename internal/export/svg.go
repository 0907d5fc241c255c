// Package export writes frames to vector formats.
package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/render"
)

// SVG is a render.Surface that records one frame as an SVG document.
// Clear discards anything drawn so far.
type SVG struct {
	Width, Height int

	bg   color.RGBA
	body strings.Builder
}

func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Clear(bg color.RGBA) {
	s.bg = bg
	s.body.Reset()
}

func (s *SVG) StrokeCircle(c geom.Point, r float64, st render.Stroke) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%.1f"/>
`, c.X, c.Y, r, hex(st.Color), alpha(st.Color), st.Width))
}

func (s *SVG) StrokePath(p curve.Path, st render.Stroke) {
	if p.Empty() {
		return
	}
	s.body.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%.1f" stroke-linejoin="round" d="%s"/>
`, hex(st.Color), alpha(st.Color), st.Width, PathData(p)))
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, hex(s.bg)))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// PathData renders p as SVG path data: one M, a Q per segment, then Z.
func PathData(p curve.Path) string {
	if p.Empty() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("M%.2f,%.2f", p.Start.X, p.Start.Y))
	for _, q := range p.Segments {
		sb.WriteString(fmt.Sprintf(" Q%.2f,%.2f %.2f,%.2f", q.Ctrl.X, q.Ctrl.Y, q.End.X, q.End.Y))
	}
	sb.WriteString(" Z")
	return sb.String()
}

func hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func alpha(c color.RGBA) float64 { return float64(c.A) / 255 }
