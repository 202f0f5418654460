// Package server exposes the root-finding solvers over an HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/copyleftdev/SOLVR/internal/bench"
	"github.com/copyleftdev/SOLVR/internal/config"
	"github.com/copyleftdev/SOLVR/internal/logging"
	"github.com/copyleftdev/SOLVR/internal/rootfind"
)

// Server handles solve and comparison requests against the built-in
// target-function registry.
type Server struct {
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a server with the given config and logger.
func NewServer(cfg *config.Config, logger *logging.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/functions", s.handleFunctions)
		r.Post("/solve", s.handleSolve)
		r.Post("/compare", s.handleCompare)
	})
}

// solveRequest selects a method and a registry function. Which point
// parameters apply depends on the method: x0 for newton, x0/x1 for secant,
// a/b for bisection. Zero tolerance or max_iterations fall back to the
// configured defaults.
type solveRequest struct {
	Method        string  `json:"method"`
	Function      string  `json:"function"`
	X0            float64 `json:"x0"`
	X1            float64 `json:"x1"`
	A             float64 `json:"a"`
	B             float64 `json:"b"`
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"max_iterations"`
}

type solveResponse struct {
	Method    string `json:"method"`
	Function  string `json:"function"`
	Converged bool   `json:"converged"`
	*rootfind.Result
}

func (s *Server) settings(req solveRequest) rootfind.Settings {
	set := rootfind.Settings{
		Tolerance:     req.Tolerance,
		MaxIterations: req.MaxIterations,
	}
	if set.Tolerance == 0 {
		set.Tolerance = s.cfg.Solver.Tolerance
	}
	if set.MaxIterations == 0 {
		set.MaxIterations = s.cfg.Solver.MaxIterations
	}
	return set
}

// runMethod dispatches one solver call for the named method.
func runMethod(method string, fn TargetFunction, req solveRequest, set rootfind.Settings) (*rootfind.Result, error) {
	switch method {
	case "newton":
		return rootfind.Newton(fn.F, fn.Derivative(), req.X0, set)
	case "secant":
		return rootfind.Secant(fn.F, req.X0, req.X1, set)
	case "bisection":
		return rootfind.Bisect(fn.F, req.A, req.B, set)
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
}

func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]interface{}{
		"functions": functionNames(),
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	fn, ok := lookupFunction(req.Function)
	if !ok {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("unknown function %q", req.Function))
		return
	}
	switch req.Method {
	case "newton", "secant", "bisection":
	default:
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("unknown method %q", req.Method))
		return
	}

	set := s.settings(req)
	start := time.Now()
	res, err := runMethod(req.Method, fn, req, set)
	elapsed := time.Since(start)

	if err != nil {
		// Precondition violations: no computation happened.
		solvesTotal.WithLabelValues(req.Method, "error").Inc()
		status := http.StatusUnprocessableEntity
		if !errors.Is(err, rootfind.ErrInvalidBracket) && !errors.Is(err, rootfind.ErrInvalidConfiguration) {
			status = http.StatusBadRequest
		}
		s.respondError(w, status, err)
		return
	}

	solveDuration.WithLabelValues(req.Method).Observe(elapsed.Seconds())
	solvesTotal.WithLabelValues(req.Method, outcomeLabel(res.Converged())).Inc()

	if !res.Converged() {
		// Degraded results stay usable; the caller gets the best-effort
		// estimate with the diagnostic attached.
		s.logger.Warn("solve returned a non-converged result", map[string]interface{}{
			"method":     req.Method,
			"function":   req.Function,
			"diagnostic": res.Diagnostic.String(),
			"iterations": res.Iterations,
		})
	}

	s.respond(w, http.StatusOK, solveResponse{
		Method:    req.Method,
		Function:  req.Function,
		Converged: res.Converged(),
		Result:    res,
	})
}

type compareRequest struct {
	solveRequest
	Runs int `json:"runs"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	fn, ok := lookupFunction(req.Function)
	if !ok {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("unknown function %q", req.Function))
		return
	}

	if req.Runs == 0 {
		req.Runs = s.cfg.Bench.Runs
	}
	set := s.settings(req.solveRequest)

	cases := make([]bench.Case, 0, 3)
	for _, method := range []string{"newton", "secant", "bisection"} {
		method := method
		cases = append(cases, bench.Case{
			Name: method,
			Run: func() (*rootfind.Result, error) {
				return runMethod(method, fn, req.solveRequest, set)
			},
		})
	}

	summaries, err := bench.Compare(cases, req.Runs)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, rootfind.ErrInvalidBracket) || errors.Is(err, rootfind.ErrInvalidConfiguration) {
			status = http.StatusUnprocessableEntity
		}
		s.respondError(w, status, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"function":  req.Function,
		"runs":      req.Runs,
		"summaries": summaries,
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	})
	s.respond(w, status, map[string]string{"error": err.Error()})
}
