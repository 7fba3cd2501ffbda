package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gridpath/pkg/buildinfo"
	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// solveRequest is the body of /v1/solve and /v1/render.
type solveRequest struct {
	Cells      [][]int  `json:"cells"`
	Algorithms []string `json:"algorithms,omitempty"`
	CellSize   float64  `json:"cell_size,omitempty"`
	PathLines  bool     `json:"path_lines,omitempty"`
	Lattice    bool     `json:"lattice,omitempty"`
}

type solution struct {
	MinCost int   `json:"min_cost"`
	Path    []int `json:"path"`
}

type solveResponse struct {
	ID        string              `json:"id"`
	RequestID string              `json:"request_id,omitempty"`
	Size      int                 `json:"size"`
	Solutions map[string]solution `json:"solutions"`
	Board     [][]grid.Highlight  `json:"board"`
	Cached    int                 `json:"cached"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": pathsolve.Names()})
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size, err := intParam(q.Get("size"), 8)
	if err != nil {
		writeError(w, err)
		return
	}
	seed, err := intParam(q.Get("seed"), 1)
	if err != nil {
		writeError(w, err)
		return
	}
	maxWeight, err := intParam(q.Get("max_weight"), grid.DefaultMaxWeight)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := errs.ValidateDimension(size, s.maxGridSize); err != nil {
		writeError(w, err)
		return
	}
	if err := errs.ValidateMaxWeight(maxWeight); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cells": grid.Random(size, maxWeight, uint64(seed))})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	req, g, ok := s.decodeGrid(w, r)
	if !ok {
		return
	}

	res, err := s.runner.Execute(r.Context(), g, pipeline.Options{Algorithms: req.Algorithms})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := solveResponse{
		ID:        uuid.NewString(),
		RequestID: middleware.GetReqID(r.Context()),
		Size:      g.Size(),
		Solutions: make(map[string]solution, len(res.Solutions)),
		Board:     res.Board.Marks(),
		Cached:    res.CacheInfo.SolveHits,
	}
	for _, sol := range res.Solutions {
		resp.Solutions[string(sol.Algorithm)] = solution{MinCost: sol.MinCost, Path: sol.Path}
	}
	s.logger.Info("solved", "id", resp.ID, "size", resp.Size, "algorithms", len(resp.Solutions))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}

	req, g, ok := s.decodeGrid(w, r)
	if !ok {
		return
	}

	res, err := s.runner.Execute(r.Context(), g, pipeline.Options{
		Algorithms: req.Algorithms,
		VizType:    r.URL.Query().Get("viz"),
		Formats:    []string{format},
		CellSize:   req.CellSize,
		PathLines:  req.PathLines,
		Lattice:    req.Lattice,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Solve-ID", uuid.NewString())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// decodeGrid reads and validates a solveRequest. On failure it writes the
// error response and returns ok == false.
func (s *Server) decodeGrid(w http.ResponseWriter, r *http.Request) (solveRequest, grid.Grid, bool) {
	var req solveRequest
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{
				Code:    string(errs.ErrCodeInvalidInput),
				Message: "request body too large",
			})
			return req, nil, false
		}
		writeError(w, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode request"))
		return req, nil, false
	}

	if err := errs.ValidateDimension(len(req.Cells), s.maxGridSize); err != nil {
		writeError(w, err)
		return req, nil, false
	}
	g := grid.Grid(req.Cells)
	if err := g.Validate(); err != nil {
		writeError(w, err)
		return req, nil, false
	}
	return req, g, true
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid integer %q", v)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its code and status. Errors without a code are
// reported as INTERNAL_ERROR without leaking their text.
func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	msg := errs.UserMessage(err)
	if code == "" {
		code = errs.ErrCodeInternal
		msg = "internal error"
	}
	writeJSON(w, errs.HTTPStatus(code), errorBody{Code: string(code), Message: msg})
}
