package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "healthdash/internal/platform/errors"
	kit "healthdash/internal/platform/testkit"
)

type payload struct {
	Energy int    `json:"energy" validate:"min=1,max=10"`
	Note   string `json:"note"`
}

func req(method, body string) *http.Request {
	return httptest.NewRequest(method, "/x", strings.NewReader(body))
}

func TestParseJSON_Strict(t *testing.T) {
	cases := []struct {
		name   string
		method string
		body   string
		code   perr.ErrorCode
		ok     bool
	}{
		{"success", "POST", `{"energy":4,"note":"hi"}`, 0, true},
		{"empty post", "POST", ``, perr.ErrorCodeJSON, false},
		{"empty get", "GET", ``, 0, true},
		{"malformed", "POST", `{"energy":`, perr.ErrorCodeJSON, false},
		{"unknown field", "POST", `{"energy":4,"x":1}`, perr.ErrorCodeJSON, false},
		{"trailing", "POST", `{"energy":4}{"energy":5}`, perr.ErrorCodeJSON, false},
		{"validation", "POST", `{"energy":40}`, perr.ErrorCodeValidation, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseJSON[payload](req(c.method, c.body))
			if c.ok {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !perr.IsCode(err, c.code) {
				t.Fatalf("err = %v, want code %d", err, c.code)
			}
			if got != (payload{}) {
				t.Fatalf("want zero value on error, got %+v", got)
			}
		})
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	body := `{"energy":4,"note":"` + strings.Repeat("a", 64) + `"}`
	o := DefaultJSONOptions()
	o.MaxBytes = 16
	if _, err := ParseJSON[payload](req("POST", body), o); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseJSON_Lenient(t *testing.T) {
	type loose struct {
		Energy any `json:"energy"`
	}

	got, err := ParseJSON[loose](req("POST", `not json`), LenientJSONOptions())
	if err != nil || got.Energy != nil {
		t.Fatalf("malformed: %+v %v", got, err)
	}

	got, err = ParseJSON[loose](req("POST", ``), LenientJSONOptions())
	if err != nil || got.Energy != nil {
		t.Fatalf("empty: %+v %v", got, err)
	}

	got, err = ParseJSON[loose](req("POST", `{"energy":7,"extra":true}`), LenientJSONOptions())
	if err != nil {
		t.Fatalf("unknown fields should pass: %v", err)
	}
	if n, ok := got.Energy.(float64); !ok || n != 7 {
		t.Fatalf("energy = %#v", got.Energy)
	}
}

func TestParseJSON_LenientStillValidates(t *testing.T) {
	_, err := ParseJSON[payload](req("POST", `{"energy":0}`), LenientJSONOptions())
	kit.MustContain(t, err.Error(), "energy must be at least 1")
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	if _, err := ParseJSON[payload](req("POST", `{"energy":3}`)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v", err)
	}
}
