package net

import (
	"net/http"

	perr "healthdash/internal/platform/errors"
)

// Wire is the envelope transports use for errors raised outside a handler
// (auth, rate limit, panics)
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error builds an error envelope with the mapped status
func Error(err error, reqID string) (int, Wire) {
	status := perr.HTTPStatus(err)
	if err == nil {
		status = http.StatusOK
	}
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}
