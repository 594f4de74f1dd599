package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"usernotes-srv/pkg/discord"
	"usernotes-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 400 with the raw error message. 5xx responses are
// forwarded to the Discord webhook when one is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError && discordClient != nil {
			ctx := c.Request.Context()
			_ = discordClient.SendError(ctx,
				"Internal Server Error",
				fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
				httpErr)
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// ErrorWithMap maps a domain error through the given mapping before writing.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, discordClient discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, discordClient)
		return
	}
	Error(c, err, discordClient)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not Found",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it to
// the Discord webhook when one is configured.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx,
			"Panic Recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal Server Error",
	})
}
