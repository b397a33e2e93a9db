// Package dto defines data transfer objects for the healthinfo HTTP API.
package dto

// HealthInfoReq represents the request body for the /health-info endpoint.
// hasSeriousDiagnosis is optional and defaults to false.
type HealthInfoReq struct {
	BMI                 float64 `json:"bmi" binding:"required,gt=0"`
	Hypertension        string  `json:"hypertension" binding:"required"`
	SmokingHistory      string  `json:"smokingHistory" binding:"required"`
	BloodGroup          string  `json:"bloodGroup" binding:"required"`
	GlucoseLevel        float64 `json:"glucoseLevel" binding:"required,gt=0"`
	HasSeriousDiagnosis bool    `json:"hasSeriousDiagnosis"`
}
