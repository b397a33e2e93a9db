// Package dto defines data transfer objects for the diagnosislist HTTP API.
package dto

// DiagnosisItem represents a catalog entry in the API response.
// It contains only the public-facing fields needed by clients.
type DiagnosisItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
