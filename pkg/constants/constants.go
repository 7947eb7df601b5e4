// Package constants provides shared constants used throughout the sgd codebase.
package constants

import "time"

// Service constants define the SGD backend locations.
const (
	// DefaultBaseURL is the root of the SGD backend REST API.
	DefaultBaseURL = "https://www.yeastgenome.org/backend"

	// SearchPath is the path of the search endpoint used for gene name resolution.
	SearchPath = "search_results"
)

// Timeout constants define timeout durations used by the HTTP layer.
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the SGD backend.
	DefaultHTTPTimeout = 60 * time.Second
)
