// Package render turns a flattened grid view into the concrete output
// formats: the nodes/edges/path JSON document, an SVG drawing, and a PNG
// preview.
package render

import (
	"encoding/json"

	"grid_router/pkg/flatten"
	"grid_router/pkg/grid"
)

// Document is the JSON form of a flattened grid. The field names are fixed;
// existing consumers depend on them.
type Document struct {
	Nodes []grid.Coordinate    `json:"nodes"`
	Edges [][2]grid.Coordinate `json:"edges"`
	Path  []grid.Coordinate    `json:"path,omitempty"`
}

// NewDocument converts a flattened view into its serialization form.
func NewDocument(v *flatten.View) Document {
	doc := Document{
		Nodes: v.Nodes,
		Edges: make([][2]grid.Coordinate, len(v.Edges)),
		Path:  v.Path,
	}
	if doc.Nodes == nil {
		doc.Nodes = []grid.Coordinate{}
	}
	for i, e := range v.Edges {
		doc.Edges[i] = [2]grid.Coordinate{e.A, e.B}
	}
	return doc
}

// JSON renders the flattened view as the nodes/edges/path document.
func JSON(v *flatten.View) ([]byte, error) {
	return json.Marshal(NewDocument(v))
}
