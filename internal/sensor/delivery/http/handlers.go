package http

import (
	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/model"
	"pet-agent-service/internal/sensor"
	"pet-agent-service/pkg/response"
)

// Decode godoc
// @Summary     Decode a collar frame
// @Description Validates and decodes one binary sensor frame, running anomaly detection on vitals payloads.
// @Tags        Sensor
// @Accept      json
// @Produce     json
// @Param       body body decodeReq true "Frame data"
// @Success     200 {object} decodeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sensor/decode [POST]
func (h *handler) Decode(c *gin.Context) {
	ctx := c.Request.Context()

	req, raw, err := h.processDecodeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reading, err := sensor.DecodeFrame(req.DeviceID, raw)
	if err != nil {
		h.l.Warnf(ctx, "sensor: decode %s: %v", req.DeviceID, err)
		response.Error(c, err, nil)
		return
	}

	var report *sensor.Report
	switch reading.Type {
	case sensor.TypeHeartRate, sensor.TypeTemperature, sensor.TypeActivity:
		stats := &model.WindowStats{
			Timestamp:   reading.Timestamp,
			HeartRate:   reading.HeartRate,
			Temperature: reading.Temperature,
			Steps:       reading.Steps,
		}
		if reading.Type == sensor.TypeActivity {
			stats.ActivityLevel = &reading.ActivityLevel
		}
		report = sensor.Detect(stats)
	}

	response.OK(c, h.newDecodeResp(reading, report))
}

// Analyze godoc
// @Summary     Analyze a vitals window
// @Description Runs threshold anomaly detection over an aggregated vitals window.
// @Tags        Sensor
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Vitals window"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sensor/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	report := sensor.Detect(&req.WindowStats)
	response.OK(c, h.newAnalyzeResp(report))
}

// Explain godoc
// @Summary     Explain a vitals window
// @Description Interprets an aggregated vitals window into human-friendly insights through the model.
// @Tags        Sensor
// @Accept      json
// @Produce     json
// @Param       body body explainReq true "Vitals window"
// @Success     200 {object} agent.WindowExplanation
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sensor/explain [POST]
func (h *handler) Explain(c *gin.Context) {
	req, err := h.processExplainReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	explanation := h.explainer.Explain(c.Request.Context(), &req.WindowStats, req.PetProfile, req.Language)
	response.OK(c, explanation)
}

// Types godoc
// @Summary     List sensor data types
// @Description Returns the data types the frame decoder understands.
// @Tags        Sensor
// @Accept      json
// @Produce     json
// @Success     200 {object} typesResp
// @Router      /api/v1/sensor/types [GET]
func (h *handler) Types(c *gin.Context) {
	response.OK(c, newTypesResp())
}
