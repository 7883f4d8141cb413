package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/eulerbatch/internal/batch"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/euler"
	"github.com/agbru/eulerbatch/internal/service"
	"github.com/agbru/eulerbatch/internal/sysmon"
)

// handleSolve processes batch solve requests.
// It decodes a JSON body holding the query list, solves the batch, and
// returns the results in request order.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req BatchRequest
	body := http.MaxBytesReader(w, r.Body, s.securityConfig.MaxBatchBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := s.checkBounds(req.Queries); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.solveTimeout(r.Context())
	defer cancel()

	start := time.Now()
	results, err := s.service.SolveBatch(ctx, req.Queries)
	duration := time.Since(start)

	if err != nil {
		s.writeSolveError(w, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, BatchResponse{
		Results:  results,
		Count:    len(results),
		Unique:   len(batch.Deduplicate(req.Queries)),
		Duration: formatDuration(duration),
	})
}

// handleSum processes single-bound requests.
// It parses the query parameter 'n', solves it, and returns the sum in JSON
// format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleSum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	n, err := parseUintParam(r, "n", true, 0)
	if err != nil {
		s.writeParseError(w, err)
		return
	}
	if err := s.checkBounds([]uint64{n}); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.solveTimeout(r.Context())
	defer cancel()

	start := time.Now()
	sum, err := s.service.Sum(ctx, n)
	duration := time.Since(start)

	if err != nil {
		s.writeSolveError(w, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, SumResponse{
		N:        n,
		Sum:      sum,
		Duration: formatDuration(duration),
	})
}

// handleFibonacci processes Fibonacci analysis requests.
// It parses the 'limit' and 'filter' query parameters, runs the analysis,
// and returns the sum, count, and limit brackets.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleFibonacci(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit, err := parseUintParam(r, "limit", false, euler.DefaultFibLimit)
	if err != nil {
		s.writeParseError(w, err)
		return
	}

	filterName := r.URL.Query().Get("filter")
	if filterName == "" {
		filterName = string(euler.FilterEven)
	}
	filter, err := euler.ParseFilter(filterName)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid 'filter' parameter: %q. Valid filters are: all, even, odd", filterName))
		return
	}

	ctx, cancel := s.solveTimeout(r.Context())
	defer cancel()

	start := time.Now()
	analysis, err := s.service.EvenFibonacci(ctx, limit, filter)
	duration := time.Since(start)

	if err != nil {
		s.writeSolveError(w, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, FibonacciResponse{
		Limit:    limit,
		Filter:   string(filter),
		Sum:      analysis.Sum.String(),
		Count:    analysis.Count,
		GLB:      analysis.GLB.String(),
		LUB:      analysis.LUB.String(),
		Duration: formatDuration(duration),
	})
}

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload including resource usage.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stats := sysmon.Sample()
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().Unix(),
		"cpu_percent": stats.CPUPercent,
		"mem_percent": stats.MemPercent,
		"goroutines":  stats.Goroutines,
		"uptime":      stats.Uptime.String(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleLimits returns the service's accepted input ranges.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, LimitsResponse{
		MaxQueries:      s.cfg.MaxQueries,
		MaxBound:        s.securityConfig.MaxBound,
		DefaultFibLimit: euler.DefaultFibLimit,
	})
}

// checkBounds rejects bounds above the configured security cap before they
// reach the solver.
func (s *Server) checkBounds(queries []uint64) error {
	for _, n := range queries {
		if s.securityConfig.MaxBound > 0 && n > s.securityConfig.MaxBound {
			return fmt.Errorf("bound %d exceeds maximum allowed (%d). This limit prevents resource exhaustion", n, s.securityConfig.MaxBound)
		}
	}
	return nil
}

// parseUintParam extracts an unsigned integer query parameter from the request.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//   - name: The parameter name.
//   - required: Whether a missing parameter is an error.
//   - defaultVal: The value to use when the parameter is absent and optional.
//
// Returns:
//   - uint64: The parsed value.
//   - error: A QueryParseError if validation fails, nil otherwise.
func parseUintParam(r *http.Request, name string, required bool, defaultVal uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			return 0, QueryParseError{
				Message:    fmt.Sprintf("Missing '%s' parameter", name),
				StatusCode: http.StatusBadRequest,
			}
		}
		return defaultVal, nil
	}

	// strconv.ParseUint rejects a leading minus sign, enforcing non-negative
	// inputs as required for security.
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, QueryParseError{
			Message:    fmt.Sprintf("Invalid '%s' parameter: must be a non-negative integer", name),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}

// writeParseError writes a QueryParseError with its embedded status code.
func (s *Server) writeParseError(w http.ResponseWriter, err error) {
	var parseErr QueryParseError
	if errors.As(err, &parseErr) {
		s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		return
	}
	s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
}

// writeSolveError maps service errors to HTTP status codes.
func (s *Server) writeSolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBatchTooLarge):
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Batch exceeds maximum query count (%d)", s.cfg.MaxQueries))
	case apperrors.IsInvalidArgument(err):
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case apperrors.IsContextError(err):
		s.writeErrorResponse(w, http.StatusGatewayTimeout, "Solve timed out")
	default:
		s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSONResponse writes a JSON response with the correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse writes a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
