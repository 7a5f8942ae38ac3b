// Package http provides http transport for check-ins
package http

import (
	"errors"
	stdhttp "net/http"

	"healthdash/internal/core/checkin"
	"healthdash/internal/modkit/httpkit"
	perr "healthdash/internal/platform/errors"
	pnet "healthdash/internal/platform/net"
	"healthdash/internal/platform/net/http/bind"
	"healthdash/internal/services/checkin/domain"
)

// Register mounts check-in endpoints on the given router
// bodies are flat {"error": "..."} objects rather than the platform envelope,
// existing clients match on them
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// submit today's check-in
	r.Post("/", httpkit.Handle(h.submit))
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /checkin CheckIn checkinSubmit
// @Summary Submit today's check-in
// @Tags CheckIn
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.Submission true "Check-in"
// @Success 200 {object} domain.Response "stored"
// @Failure 400 {object} domain.ErrorBody "Missing required fields"
// @Failure 401 {object} domain.ErrorBody "Unauthorized"
// @Failure 500 {object} domain.ErrorBody "store error"
// @Router /checkin [post]
func (h *handlers) submit(r *stdhttp.Request) httpkit.Response {
	uid, err := httpkit.User(r)
	if err != nil {
		return httpkit.Raw(stdhttp.StatusUnauthorized, Unauthorized)
	}

	// malformed json decodes as {}, which then fails the required field check
	sub, err := bind.ParseJSON[domain.Submission](r, bind.LenientJSONOptions())
	if err != nil {
		return Failure(err)
	}

	res, err := h.svc.Submit(r.Context(), uid, sub)
	if err != nil {
		return Failure(err)
	}
	return httpkit.Raw(stdhttp.StatusOK, domain.ResponseFrom(res))
}

// Failure renders a body or pipeline error as a flat error body
// only a submission without its required scores is the caller's fault,
// everything else is a 500 carrying the store message unchanged
func Failure(err error) httpkit.Response {
	if errors.Is(err, checkin.ErrMissingRequired) || perr.IsCode(err, perr.ErrorCodeJSON) {
		return httpkit.Raw(stdhttp.StatusBadRequest, domain.ErrorBody{Error: perr.MessageOf(err)})
	}
	return httpkit.Raw(stdhttp.StatusInternalServerError, domain.ErrorBody{Error: perr.MessageOf(err)})
}

// Unauthorized is the body for a request with no resolvable caller
var Unauthorized = domain.ErrorBody{Error: "Unauthorized"}

// WriteRejection renders middleware rejections in the check-in body shape
func WriteRejection(w stdhttp.ResponseWriter, status int, body any) {
	msg := stdhttp.StatusText(status)
	switch b := body.(type) {
	case pnet.Wire:
		if b.Error != "" {
			msg = b.Error
		}
	case error:
		msg = perr.MessageOf(b)
	}
	if status == stdhttp.StatusUnauthorized {
		msg = Unauthorized.Error
	}
	httpkit.JSON(w, status, domain.ErrorBody{Error: msg})
}
