package sensor

import "time"

// DataType identifies which payload a collar frame carries.
type DataType string

const (
	TypeHeartRate   DataType = "heart_rate"
	TypeTemperature DataType = "temperature"
	TypeActivity    DataType = "activity"
	TypeLocation    DataType = "location"
	TypeBattery     DataType = "battery"
)

// Reading is one decoded collar frame. Only the fields of the frame's
// data type are populated.
type Reading struct {
	DeviceID   string    `json:"device_id"`
	Type       DataType  `json:"data_type"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`

	HeartRate     float64 `json:"heart_rate,omitempty"`
	Temperature   float64 `json:"temperature,omitempty"`
	ActivityLevel float64 `json:"activity_level,omitempty"`
	Steps         int     `json:"steps,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	Accuracy      int     `json:"accuracy,omitempty"`
	BatteryLevel  int     `json:"battery_level,omitempty"`
	Charging      bool    `json:"charging,omitempty"`
}

// Severity of one detected anomaly.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly is one threshold violation in a vitals window.
type Anomaly struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report aggregates the anomalies of one vitals window.
type Report struct {
	AnomalyDetected bool      `json:"anomaly_detected"`
	Anomalies       []Anomaly `json:"anomalies"`
	RiskLevel       string    `json:"risk_level"`
}
