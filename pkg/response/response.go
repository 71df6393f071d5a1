package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: CodeOK,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 with the error's message and optional detail data.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: CodeBadRequest,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends a 500 without leaking the underlying error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests aborts the request with a 429. Used by the rate limit
// middleware so throttled clients still get the standard envelope.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: CodeRateLimited,
		Message:   MessageRateLimited,
	})
}
