// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "healthdash/internal/platform/errors"
	"healthdash/internal/platform/logger"
	"healthdash/internal/platform/validate"
)

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
	// Lenient turns any read or decode failure into the zero value of T.
	// Validation still runs on whatever was decoded
	Lenient bool
}

// DefaultJSONOptions are the strict defaults
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: true,
	}
}

// LenientJSONOptions accept unknown fields and treat bad bodies as empty
func LenientJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, Lenient: true, AllowEmptyBody: true}
}

var jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	dst, err := decode[T](r, o)
	if err != nil {
		if !o.Lenient {
			return zero, err
		}
		logger.C(r.Context()).Debug().Err(err).Msg("lenient bind, treating body as empty")
		dst = zero
	}

	if err := validate.Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

func decode[T any](r *http.Request, o JSONOptions) (T, error) {
	var dst T
	var reader io.Reader = r.Body

	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			// tolerate empty body for safe methods
			switch r.Method {
			case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
				return dst, nil
			}
			return dst, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, nil
}
