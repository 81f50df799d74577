package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notification-service/pkg/errno"
)

// Success writes the payload as-is with HTTP 200.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Failed converts err into a JSON error body; the HTTP status is derived
// from the business error code when it is a valid status code.
func Failed(ctx *gin.Context, err error) {
	FailedWithStatus(ctx, err, 0)
}

// FailedWithStatus is Failed with an explicit HTTP status override.
func FailedWithStatus(ctx *gin.Context, err error, status int) {
	code := errno.ErrInternalServer
	message := code.Message

	var bizErr errno.BizError
	var en *errno.Errno
	switch {
	case errors.As(err, &bizErr):
		code = bizErr.Errno()
		message = bizErr.Message()
	case errors.As(err, &en):
		code = en
		message = en.Message
	case err != nil:
		message = err.Error()
	}

	if status == 0 {
		status = httpStatus(code.Code)
	}
	ctx.JSON(status, gin.H{
		"status":  "error",
		"code":    code.Code,
		"message": message,
	})
}

func httpStatus(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusInternalServerError
}
