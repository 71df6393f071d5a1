package sensor

import (
	"fmt"
	"strings"

	"pet-agent-service/internal/model"
)

// Threshold bounds for vitals. Values outside the band are anomalies.
type threshold struct {
	min float64
	max float64
}

var vitalsThresholds = map[string]threshold{
	"heart_rate":  {min: 60, max: 180},
	"temperature": {min: 37.0, max: 39.5},
	"activity":    {min: 0.1, max: 1.0},
}

// Detect scans one vitals window against the thresholds. A zero field means
// the reading is absent and is skipped, not flagged.
func Detect(stats *model.WindowStats) *Report {
	report := &Report{Anomalies: []Anomaly{}, RiskLevel: "low"}
	if stats == nil {
		return report
	}

	if hr := stats.HeartRate; hr > 0 {
		if hr < vitalsThresholds["heart_rate"].min {
			report.add("low_heart_rate", SeverityHigh, fmt.Sprintf("heart rate too low: %.0f bpm", hr))
		} else if hr > vitalsThresholds["heart_rate"].max {
			report.add("high_heart_rate", SeverityHigh, fmt.Sprintf("heart rate too high: %.0f bpm", hr))
		}
	}

	if temp := stats.Temperature; temp > 0 {
		if temp < vitalsThresholds["temperature"].min {
			report.add("low_temperature", SeverityMedium, fmt.Sprintf("body temperature too low: %.1f C", temp))
		} else if temp > vitalsThresholds["temperature"].max {
			report.add("high_temperature", SeverityHigh, fmt.Sprintf("body temperature too high: %.1f C", temp))
		}
	}

	// Zero activity is a real reading, so presence is a nil check rather
	// than a zero-value check.
	if stats.ActivityLevel != nil {
		if activity := *stats.ActivityLevel; activity < vitalsThresholds["activity"].min {
			report.add("low_activity", SeverityMedium, fmt.Sprintf("activity level too low: %.2f", activity))
		}
	}

	report.AnomalyDetected = len(report.Anomalies) > 0
	report.RiskLevel = riskLevel(report.Anomalies)
	return report
}

func (r *Report) add(typ string, severity Severity, message string) {
	r.Anomalies = append(r.Anomalies, Anomaly{Type: typ, Severity: severity, Message: message})
}

func riskLevel(anomalies []Anomaly) string {
	if len(anomalies) == 0 {
		return "low"
	}
	for _, a := range anomalies {
		if a.Severity == SeverityHigh {
			return "high"
		}
	}
	if len(anomalies) > 1 {
		return "medium"
	}
	return "low"
}

// RenderMessage turns a report into the text that substitutes for a user
// message when an anomaly triggers a dispatch turn.
func RenderMessage(report *Report) string {
	if report == nil || !report.AnomalyDetected {
		return ""
	}
	messages := make([]string, 0, len(report.Anomalies))
	for _, a := range report.Anomalies {
		messages = append(messages, a.Message)
	}
	return fmt.Sprintf("Abnormal vital signs detected on the collar: %s. Overall risk level: %s. What should I do?",
		strings.Join(messages, "; "), report.RiskLevel)
}
