package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "recurring-task-engine/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error renders err. An HTTPError keeps its own status and message;
// anything else is hidden behind a 500.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}

	c.JSON(httpErr.Code, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// ErrorWithData renders err like Error and attaches data to the body.
func ErrorWithData(c *gin.Context, err error, data any) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		httpErr = pkgErrors.ErrInternalServerError
	}

	c.JSON(httpErr.Code, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
