package server

// BatchRequest is the JSON payload accepted by the solve endpoint.
type BatchRequest struct {
	// Queries is the list of bounds to solve, in order.
	Queries []uint64 `json:"queries"`
}

// BatchResponse represents the standardized JSON response for a solved batch.
type BatchResponse struct {
	// Results holds one sum per query, positionally aligned with the request.
	Results []uint64 `json:"results"`
	// Count is the number of queries in the batch.
	Count int `json:"count"`
	// Unique is the number of distinct bounds that were computed.
	Unique int `json:"unique"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
}

// SumResponse represents the standardized JSON response for a single bound.
type SumResponse struct {
	// N is the bound that was solved.
	N uint64 `json:"n"`
	// Sum is the sum of multiples of 3 or 5 strictly below N.
	Sum uint64 `json:"sum"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
}

// FibonacciResponse represents the JSON response for a Fibonacci analysis.
// Sums and brackets are decimal strings since the values are arbitrary
// precision.
type FibonacciResponse struct {
	// Limit is the inclusive bound of the analysis.
	Limit uint64 `json:"limit"`
	// Filter is the term filter that was applied.
	Filter string `json:"filter"`
	// Sum is the sum of the filtered terms not exceeding the limit.
	Sum string `json:"sum"`
	// Count is the number of filtered terms not exceeding the limit.
	Count int `json:"count"`
	// GLB is the greatest filtered term not exceeding the limit.
	GLB string `json:"glb"`
	// LUB is the least filtered term exceeding the limit.
	LUB string `json:"lub"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
}

// LimitsResponse describes the service's accepted input ranges.
type LimitsResponse struct {
	// MaxQueries is the largest accepted batch size.
	MaxQueries int `json:"max_queries"`
	// MaxBound is the largest accepted query bound.
	MaxBound uint64 `json:"max_bound"`
	// DefaultFibLimit is the default Fibonacci analysis bound.
	DefaultFibLimit uint64 `json:"default_fib_limit"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// QueryParseError represents a parameter parsing error with HTTP status.
type QueryParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e QueryParseError) Error() string {
	return e.Message
}
