// Package dto defines data transfer objects for the triage HTTP API.
package dto

// TriageReq represents the request body for the /instant-clinic endpoint.
// condition selects which reading group the form filled in; unrelated
// readings arrive empty.
type TriageReq struct {
	Condition string `json:"condition" binding:"required,oneof=heart eye diabetes"`

	HeartRate        string `json:"heartRate"`
	BloodPressure    string `json:"bloodPressure"`
	HighBP           string `json:"highBP"`
	Stroke           string `json:"stroke"`
	HighCholesterol  string `json:"highCholesterol"`
	CholesterolCheck string `json:"cholesterolCheck"`
	PhysicalActivity string `json:"physicalActivity"`

	HasDiabetes       string `json:"hasDiabetes"`
	HbA1cLevel        string `json:"hbA1cLevel"`
	BloodGlucoseLevel string `json:"bloodGlucoseLevel"`
}
