package errors

import "net/http"

var ErrSessionRequired = &Exception{
	Message:    "invalid or expired session",
	StatusCode: http.StatusUnauthorized,
}
