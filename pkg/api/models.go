package api

// PathRequest is the JSON body for POST /api/v1/path. Coordinates are floats
// so that callers may send fractional points together with "snap": true.
type PathRequest struct {
	Start PointJSON `json:"start"`
	Goal  PointJSON `json:"goal"`
	Snap  bool      `json:"snap,omitempty"`
}

// PointJSON represents an x/y pair in JSON.
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CellJSON represents an integer grid cell in JSON.
type CellJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PathResponse is the JSON response for a successful path query.
type PathResponse struct {
	Cost int        `json:"cost"`
	Path []CellJSON `json:"path"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// StatsResponse is the JSON response for GET /api/v1/stats.
type StatsResponse struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	NumNodes int `json:"num_nodes"`
	NumEdges int `json:"num_edges"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
