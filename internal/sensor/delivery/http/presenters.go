package http

import (
	"pet-agent-service/internal/model"
	"pet-agent-service/internal/sensor"
)

// --- Request DTOs ---

type decodeReq struct {
	DeviceID string `json:"device_id" binding:"required"`
	// Frame is the raw collar frame, base64 encoded.
	Frame string `json:"frame" binding:"required"`
}

type analyzeReq struct {
	WindowStats model.WindowStats `json:"window_stats" binding:"required"`
}

type explainReq struct {
	WindowStats model.WindowStats `json:"window_stats" binding:"required"`
	PetProfile  *model.PetProfile `json:"pet_profile"`
	Language    string            `json:"language"`
}

// --- Response DTOs ---

type decodeResp struct {
	Reading *sensor.Reading `json:"reading"`
	Report  *sensor.Report  `json:"report,omitempty"`
}

func (h *handler) newDecodeResp(reading *sensor.Reading, report *sensor.Report) decodeResp {
	resp := decodeResp{Reading: reading}
	if report != nil && report.AnomalyDetected {
		resp.Report = report
	}
	return resp
}

type analyzeResp struct {
	Report  *sensor.Report `json:"report"`
	Message string         `json:"message,omitempty"`
}

func (h *handler) newAnalyzeResp(report *sensor.Report) analyzeResp {
	return analyzeResp{
		Report:  report,
		Message: sensor.RenderMessage(report),
	}
}

type typesResp struct {
	Types []string `json:"types"`
}

func newTypesResp() typesResp {
	return typesResp{Types: []string{
		string(sensor.TypeHeartRate),
		string(sensor.TypeTemperature),
		string(sensor.TypeActivity),
		string(sensor.TypeLocation),
		string(sensor.TypeBattery),
	}}
}
