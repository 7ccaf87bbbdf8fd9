package serializer

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope every endpoint shares.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Err builds an error body. The underlying error detail is exposed
// outside release mode only.
func Err(msg string, err error) ErrorResponse {
	res := ErrorResponse{Error: msg}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Detail = fmt.Sprintf("%+v", err)
	}
	return res
}

// NotFound is a 404 body with the given resource message.
func NotFound(msg string) ErrorResponse {
	if msg == "" {
		msg = "Not found"
	}
	return ErrorResponse{Error: msg}
}

// ParamErr is the 400 body for binding or path-parameter failures.
func ParamErr(err error) ErrorResponse {
	return Err("Invalid request payload", err)
}

// InternalErr is the 500 body for storage and other unexpected errors.
func InternalErr(err error) ErrorResponse {
	return Err("Internal Server Error", err)
}

// Success is the mutation acknowledgement body.
func Success() gin.H {
	return gin.H{"success": true}
}
