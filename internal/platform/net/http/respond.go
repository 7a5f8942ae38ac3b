// Package http writes handler results. Meta routes answer in an envelope,
// the check-in route answers with its own bodies through Raw
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "healthdash/internal/platform/net"
)

// Envelope is the body of enveloped routes: the error fields on failure, Data otherwise
type Envelope struct {
	pnet.Wire
	Data any `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return style handlers hand back
type Response struct {
	// Status defaults to 200, an error Body derives its own
	Status int
	Body   any
	// Raw writes Body as is, no envelope
	Raw bool
}

// Handle adapts a Response returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	if resp.Raw {
		JSON(w, resp.statusOr200(), resp.Body)
		return
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, wire := pnet.Error(err, reqID)
		JSON(w, status, Envelope{Wire: wire})
		return
	}

	status := resp.statusOr200()
	JSON(w, status, Envelope{
		Wire: pnet.Wire{StatusCode: status, Status: stdhttp.StatusText(status), RequestID: reqID},
		Data: resp.Body,
	})
}

func (resp Response) statusOr200() int {
	if resp.Status == 0 {
		return stdhttp.StatusOK
	}
	return resp.Status
}

// OK returns a 200 enveloped response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns an enveloped response whose status comes from the error code
func Error(err error) Response { return Response{Body: err} }

// Raw returns a response written without the envelope
func Raw(status int, body any) Response { return Response{Status: status, Body: body, Raw: true} }
