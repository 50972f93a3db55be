package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "atrova/pkg/errors"
)

func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their own status and code,
// anything else is reported as a 400 carrying err's text.
func Error(c *gin.Context, err error, data map[string]any) {
	status, body := errorResp(err, data)
	c.JSON(status, body)
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	status, body := errorResp(err, nil)
	c.AbortWithStatusJSON(status, body)
}

func errorResp(err error, data map[string]any) (int, Resp) {
	if data == nil {
		data = map[string]any{}
	}
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr.StatusCode, Resp{ErrorCode: httpErr.Code, Message: httpErr.Message, Data: data}
	}
	return http.StatusBadRequest, Resp{ErrorCode: UnknownErrorCode, Message: err.Error(), Data: data}
}
