package handlers

import (
	"io"
	"net/http"

	"github.com/osa911/contactrelay/internal/api/dto/common"
	"github.com/osa911/contactrelay/internal/logging"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps the request body accepted by the local server
const MaxBodyBytes = 1 << 20

// Submit adapts a gin request onto Handle
func (h *ContactHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		logging.GetGlobalLogger().Warn("Error reading request body: %v", err)
		writeResponse(c, h.fail(http.StatusBadRequest, common.MsgInvalidJSON))
		return
	}

	resp := h.Handle(c.Request.Context(), Invocation{
		Method:   c.Request.Method,
		Body:     body,
		Headers:  c.Request.Header,
		SourceIP: c.RemoteIP(),
	})
	writeResponse(c, resp)
}

func writeResponse(c *gin.Context, resp Response) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
}
