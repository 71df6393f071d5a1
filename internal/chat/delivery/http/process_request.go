package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processStreamReq binds and validates the chat stream request body.
func (h *handler) processStreamReq(c *gin.Context) (streamReq, error) {
	var req streamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (r streamReq) validate() error {
	if r.Message == "" {
		return errors.New("message is required")
	}
	return nil
}
