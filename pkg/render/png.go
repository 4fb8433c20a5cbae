package render

import (
	"bytes"

	"github.com/fogleman/gg"
)

// PNG rasterizes the scene with the same colors and placement as the SVG
// output.
func PNG(s Scene) ([]byte, error) {
	scale := float64(s.Scale)
	offset := float64(s.Scale / 2)

	dc := gg.NewContext(s.Width*s.Scale+s.Scale, s.Height*s.Scale+s.Scale)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	for _, e := range s.View.Edges {
		if e.OnPath {
			dc.SetRGB255(0, 255, 0)
			dc.SetLineWidth(2)
		} else {
			dc.SetRGB255(0, 0, 0)
			dc.SetLineWidth(1)
		}
		dc.DrawLine(
			offset+scale*float64(e.A.X), offset+scale*float64(e.A.Y),
			offset+scale*float64(e.B.X), offset+scale*float64(e.B.Y),
		)
		dc.Stroke()
	}

	for _, c := range s.View.Nodes {
		cx := offset + scale*float64(c.X)
		cy := offset + scale*float64(c.Y)
		switch c {
		case s.Start:
			dc.SetRGB255(255, 0, 0)
			dc.DrawCircle(cx, cy, scale/10)
		case s.Goal:
			dc.SetRGB255(0, 0, 255)
			dc.DrawCircle(cx, cy, scale/10)
		default:
			dc.SetRGB255(0, 0, 0)
			dc.DrawCircle(cx, cy, scale/15)
		}
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
