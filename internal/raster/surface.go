// Package raster draws frames into an in-memory image with the gg software
// renderer, for headless snapshots.
package raster

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/render"
)

// Surface is a render.Surface backed by a gg context. Stroke failures do
// not interrupt the frame; the first one is kept and reported by Err.
type Surface struct {
	dc  *gg.Context
	err error
}

func NewSurface(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

func (s *Surface) Clear(bg color.RGBA) {
	s.err = nil
	s.dc.ClearWithColor(gg.FromColor(bg))
}

func (s *Surface) StrokeCircle(c geom.Point, r float64, st render.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawCircle(c.X, c.Y, r)
	s.keep(s.dc.Stroke())
}

func (s *Surface) StrokePath(p curve.Path, st render.Stroke) {
	if p.Empty() {
		return
	}
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.MoveTo(p.Start.X, p.Start.Y)
	for _, q := range p.Segments {
		s.dc.QuadraticTo(q.Ctrl.X, q.Ctrl.Y, q.End.X, q.End.Y)
	}
	s.dc.ClosePath()
	s.keep(s.dc.Stroke())
}

func (s *Surface) Err() error { return s.err }

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.SavePNG(path)
}

func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

func (s *Surface) Close() error {
	return errors.Join(s.err, s.dc.Close())
}

func (s *Surface) keep(err error) {
	if s.err == nil {
		s.err = err
	}
}
