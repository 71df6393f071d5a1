package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-agent-service/internal/dispatch"
	"pet-agent-service/pkg/response"
)

// Stream godoc
// @Summary     Stream a chat turn
// @Description Dispatches one user message and streams router, transfer and specialist events as SSE.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       body body streamReq true "Turn data"
// @Success     200 {string} string "SSE stream of events, terminated by [DONE]"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/stream [POST]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStreamReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)

	emit := func(ev dispatch.Event) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		raw, merr := json.Marshal(newStreamEventResp(ev))
		if merr != nil {
			return merr
		}
		if _, werr := fmt.Fprintf(c.Writer, "data: %s\n\n", raw); werr != nil {
			return werr
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	if err := h.dispatcher.Dispatch(ctx, req.toTurn(), emit); err != nil {
		switch {
		case errors.Is(err, dispatch.ErrStreamClosed):
			h.l.Infof(ctx, "chat: client went away mid-turn: %v", err)
		case errors.Is(err, dispatch.ErrEmptyTurn):
			fmt.Fprintf(c.Writer, "data: {\"type\":\"error\",\"content\":{\"message\":\"empty message\"}}\n\n")
		default:
			h.l.Errorf(ctx, "chat: dispatch: %v", err)
		}
		return
	}

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	if flusher != nil {
		flusher.Flush()
	}
}

// Agents godoc
// @Summary     List specialists
// @Description Returns every routable specialist with its description.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} agentsResp
// @Router      /api/v1/chat/agents [GET]
func (h *handler) Agents(c *gin.Context) {
	response.OK(c, h.newAgentsResp(h.registry.Specialists()))
}
