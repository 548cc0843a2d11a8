package errors

import "net/http"

// ErrUnknownProject signals an application referencing a project id that does
// not exist. It is a client error, not a lookup miss.
var ErrUnknownProject = &Exception{
	Message:    "referenced project does not exist",
	StatusCode: http.StatusBadRequest,
}
