package entities

import "encoding/json"

const ScheduleTypeMeasurement = "measurement"

// ScheduleEntry is an appointment stored in the external schedule service.
//
// MeasurementData is kept as raw JSON so entries that already carry real
// measurements are written back byte for byte.
type ScheduleEntry struct {
	ID              string          `json:"id,omitempty"`
	Title           string          `json:"title"`
	EstimateNo      string          `json:"estimateNo"`
	Type            string          `json:"type"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	CustomerName    string          `json:"customerName,omitempty"`
	Contact         string          `json:"contact,omitempty"`
	Address         string          `json:"address,omitempty"`
	ProjectName     string          `json:"projectName,omitempty"`
	Memo            string          `json:"memo,omitempty"`
	MeasurementData json.RawMessage `json:"measurementData,omitempty"`
}

// MeasurementSlot is one per-line-item measurement placeholder.
type MeasurementSlot struct {
	LineIndex      int     `json:"lineIndex"`
	Space          string  `json:"space"`
	ProductName    string  `json:"productName"`
	EstimateWidth  float64 `json:"estimateWidth"`
	EstimateHeight float64 `json:"estimateHeight"`
	MeasuredWidth  string  `json:"measuredWidth"`
	MeasuredHeight string  `json:"measuredHeight"`
	Note           string  `json:"note"`
}
