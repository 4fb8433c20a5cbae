package render

import (
	"strconv"

	"github.com/beevik/etree"

	"grid_router/pkg/flatten"
	"grid_router/pkg/grid"
)

// Scene carries the rendering inputs shared by the SVG and PNG outputs.
type Scene struct {
	View   *flatten.View
	Width  int // grid width in cells
	Height int // grid height in cells
	Scale  int // pixels per cell
	Start  grid.Coordinate
	Goal   grid.Coordinate
}

// Edge and node styling. On-path edges are green and heavier; the start node
// is red, the goal blue, and both slightly larger than ordinary nodes.
const (
	pathStroke  = "stroke:rgb(0, 255, 0); stroke-width:2"
	plainStroke = "stroke:rgb(0, 0, 0); stroke-width:1"
	startStyle  = "stroke: rgb(255, 0, 0); fill: rgb(255, 0, 0)"
	goalStyle   = "stroke: rgb(0, 0, 255); fill: rgb(0, 0, 255)"
)

// SVG renders the scene as a standalone SVG document. Primitives sit at
// offset + scale × coordinate with offset = scale/2, leaving half a cell of
// margin on every side.
func SVG(s Scene) ([]byte, error) {
	scale := s.Scale
	offset := scale / 2

	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("width", strconv.Itoa(s.Width*scale+scale))
	root.CreateAttr("height", strconv.Itoa(s.Height*scale+scale))
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	for _, e := range s.View.Edges {
		line := root.CreateElement("line")
		line.CreateAttr("x1", strconv.Itoa(offset+scale*e.A.X))
		line.CreateAttr("y1", strconv.Itoa(offset+scale*e.A.Y))
		line.CreateAttr("x2", strconv.Itoa(offset+scale*e.B.X))
		line.CreateAttr("y2", strconv.Itoa(offset+scale*e.B.Y))
		if e.OnPath {
			line.CreateAttr("style", pathStroke)
		} else {
			line.CreateAttr("style", plainStroke)
		}
	}

	for _, c := range s.View.Nodes {
		circle := root.CreateElement("circle")
		circle.CreateAttr("cx", strconv.Itoa(offset+scale*c.X))
		circle.CreateAttr("cy", strconv.Itoa(offset+scale*c.Y))
		switch c {
		case s.Start:
			circle.CreateAttr("r", strconv.Itoa(scale/10))
			circle.CreateAttr("style", startStyle)
		case s.Goal:
			circle.CreateAttr("r", strconv.Itoa(scale/10))
			circle.CreateAttr("style", goalStyle)
		default:
			circle.CreateAttr("r", strconv.Itoa(scale/15))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
