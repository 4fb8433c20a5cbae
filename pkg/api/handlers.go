package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"mime"
	"net/http"
	"time"

	"grid_router/pkg/flatten"
	"grid_router/pkg/grid"
	"grid_router/pkg/render"
	"grid_router/pkg/routing"
)

// Handlers holds the HTTP handlers and their dependencies. The graph is
// immutable, so one Handlers value serves all requests concurrently.
type Handlers struct {
	pather  routing.Pather
	snapper *routing.Snapper
	graph   *grid.Graph
	stats   StatsResponse
}

// NewHandlers creates handlers over the given pather and graph. snapper may
// be nil when snapping is not offered.
func NewHandlers(pather routing.Pather, snapper *routing.Snapper, g *grid.Graph, stats StatsResponse) *Handlers {
	return &Handlers{
		pather:  pather,
		snapper: snapper,
		graph:   g,
		stats:   stats,
	}
}

// HandlePath handles POST /api/v1/path.
func (h *Handlers) HandlePath(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	// Enforce Content-Type.
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		observePathQuery("invalid", started)
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	var req PathRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		observePathQuery("invalid", started)
		writeError(w, http.StatusBadRequest, "invalid_request", "")
		return
	}

	start, errCode := h.resolveCell(req.Start, req.Snap)
	if errCode != "" {
		observePathQuery("invalid", started)
		writeResolveError(w, errCode, "start")
		return
	}
	goal, errCode := h.resolveCell(req.Goal, req.Snap)
	if errCode != "" {
		observePathQuery("invalid", started)
		writeResolveError(w, errCode, "goal")
		return
	}

	res, err := h.pather.Route(r.Context(), start, goal)
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrNoPath):
			observePathQuery("no_path", started)
			writeError(w, http.StatusNotFound, "no_path_found", "")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			observePathQuery("timeout", started)
			writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
		default:
			observePathQuery("error", started)
			writeError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}

	resp := PathResponse{
		Cost: res.Cost,
		Path: make([]CellJSON, len(res.Path)),
	}
	for i, id := range res.Path {
		c := h.graph.Coord(id)
		resp.Path[i] = CellJSON{X: c.X, Y: c.Y}
	}

	observePathQuery("ok", started)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleGraph handles GET /api/v1/graph, returning the flattened graph
// document without a path.
func (h *Handlers) HandleGraph(w http.ResponseWriter, r *http.Request) {
	doc := render.NewDocument(flatten.Flatten(h.graph, nil))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.stats)
}

// resolveCell turns a request point into a grid cell. Without snapping the
// point must be finite and integral; with snapping it is resolved to the
// nearest node. Returns an error code on failure.
func (h *Handlers) resolveCell(p PointJSON, snap bool) (grid.Coordinate, string) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return grid.Coordinate{}, "invalid_coordinates"
	}
	if snap {
		if h.snapper == nil {
			return grid.Coordinate{}, "snap_unavailable"
		}
		id, err := h.snapper.Snap(p.X, p.Y)
		if err != nil {
			return grid.Coordinate{}, "point_too_far"
		}
		return h.graph.Coord(id), ""
	}
	if p.X != math.Trunc(p.X) || p.Y != math.Trunc(p.Y) {
		return grid.Coordinate{}, "invalid_coordinates"
	}
	return grid.Coordinate{X: int(p.X), Y: int(p.Y)}, ""
}

func writeResolveError(w http.ResponseWriter, code, field string) {
	status := http.StatusBadRequest
	if code == "point_too_far" {
		status = http.StatusUnprocessableEntity
	}
	writeError(w, status, code, field)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code, Field: field})
}
