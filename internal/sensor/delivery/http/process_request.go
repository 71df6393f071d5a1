package http

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

// processDecodeReq binds the decode request and unwraps the frame bytes.
func (h *handler) processDecodeReq(c *gin.Context) (decodeReq, []byte, error) {
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, err
	}
	raw, err := base64.StdEncoding.DecodeString(req.Frame)
	if err != nil {
		return req, nil, err
	}
	return req, raw, nil
}

// processAnalyzeReq binds the vitals window to analyze.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExplainReq binds the vitals window to explain.
func (h *handler) processExplainReq(c *gin.Context) (explainReq, error) {
	var req explainReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
