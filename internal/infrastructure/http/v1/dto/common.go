// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// ErrorResponse documents the error body rendered by middleware.ErrorHandler.
type ErrorResponse struct {
	Code       string         `json:"code"`
	Error      string         `json:"error"`
	Details    map[string]any `json:"details,omitempty"`
	InvalidIDs []int64        `json:"invalidIds,omitempty"`
}

// mapSlice converts every element of in with fn. Never returns nil, so empty
// lists encode as [] rather than null.
func mapSlice[T any, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
