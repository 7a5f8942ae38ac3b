package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perrs "healthdash/internal/platform/errors"
	pnet "healthdash/internal/platform/net"
	phttp "healthdash/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func run(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestGet(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func(*http.Request) (any, error)
		code int
		body string
	}{
		{"plain value", func(*http.Request) (any, error) { return map[string]string{"a": "1"}, nil }, 200, `"a":"1"`},
		{"nil value", func(*http.Request) (any, error) { return nil, nil }, 200, `"status_code":200`},
		{"response passthrough", func(*http.Request) (any, error) { return Raw(202, map[string]bool{"ok": true}), nil }, 202, `{"ok":true}`},
		{"error", func(*http.Request) (any, error) { return nil, perrs.New(perrs.ErrorCodeValidation, "nope") }, 400, `"error":"nope"`},
		{"unavailable", func(*http.Request) (any, error) { return nil, perrs.New(perrs.ErrorCodeUnavailable, "pg down") }, 503, `"error":"pg down"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := phttp.AdaptChi(chi.NewRouter())
			Get(r, "/ready", c.fn)
			rec := run(r.Mux(), httptest.NewRequest("GET", "/ready", nil))
			if rec.Code != c.code || !strings.Contains(rec.Body.String(), c.body) {
				t.Fatalf("code=%d body=%s", rec.Code, rec.Body)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	t.Parallel()

	rec := run(http.HandlerFunc(Handle(func(*http.Request) Response { return Raw(201, map[string]int{"id": 7}) })), httptest.NewRequest("POST", "/", nil))
	if rec.Code != 201 || strings.TrimSpace(rec.Body.String()) != `{"id":7}` {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body)
	}
	rec = run(http.HandlerFunc(Handle(func(*http.Request) Response { return phttp.Error(errors.New("x")) })), httptest.NewRequest("POST", "/", nil))
	if rec.Code != 500 {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestUser(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	if _, err := User(r); !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
		t.Fatalf("err = %v", err)
	}
	r = r.WithContext(pnet.WithUser(r.Context(), "u-1"))
	if uid, err := User(r); err != nil || uid != "u-1" {
		t.Fatalf("uid=%q err=%v", uid, err)
	}
}

func TestPort_Parse(t *testing.T) {
	t.Parallel()

	ok := NewPortFunc(func(tok string) (string, error) {
		if tok == "good" {
			return "u-1", nil
		}
		return "", errors.New("bad sig")
	})
	cases := []struct {
		name   string
		port   *Port
		header string
		want   string
		msg    string
	}{
		{"missing", ok, "", "", "missing bearer token"},
		{"wrong scheme", ok, "Basic abc", "", "missing bearer token"},
		{"empty token", ok, "Bearer   ", "", "missing bearer token"},
		{"bad token", ok, "Bearer nope", "", "invalid bearer token"},
		{"nil parser", NewPortFunc(nil), "Bearer good", "", "invalid bearer token"},
		{"good", ok, "  bearer good ", "u-1", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if c.header != "" {
				r.Header.Set("Authorization", c.header)
			}
			uid, err := c.port.Parse(r)
			if c.msg == "" {
				if err != nil || uid != c.want {
					t.Fatalf("uid=%q err=%v", uid, err)
				}
				return
			}
			e, isOurs := perrs.As(err)
			if !isOurs || e.Code() != perrs.ErrorCodeUnauthorized || e.Message() != c.msg {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestProtected(t *testing.T) {
	t.Parallel()

	r := phttp.AdaptChi(chi.NewRouter())
	port := NewPortFunc(func(string) (string, error) { return "u-9", nil })

	var custom bool
	Protected(r, port, func(w http.ResponseWriter, status int, _ any) {
		custom = true
		w.WriteHeader(status)
	}, func(pr Router) {
		Get(pr, "/me", func(req *http.Request) (any, error) { return User(req) })
	})
	Get(r, "/open", func(*http.Request) (any, error) { return "hi", nil })

	rec := run(r.Mux(), httptest.NewRequest("GET", "/me", nil))
	if rec.Code != 401 || !custom {
		t.Fatalf("unauthenticated: code=%d custom=%v", rec.Code, custom)
	}

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec = run(r.Mux(), req)
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), "u-9") {
		t.Fatalf("authenticated: code=%d body=%s", rec.Code, rec.Body)
	}

	if rec := run(r.Mux(), httptest.NewRequest("GET", "/open", nil)); rec.Code != 200 {
		t.Fatalf("open route = %d", rec.Code)
	}
}

func TestCommonStack(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	m.Use(CommonStack(StackOptions{})...)
	m.Get("/x", func(w http.ResponseWriter, r *http.Request) {
		if pnet.RequestID(r.Context()) == "" {
			t.Error("request id missing")
		}
		_, _ = w.Write([]byte("ok"))
	})
	m.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("x") })

	if rec := run(m, httptest.NewRequest("GET", "/x/", nil)); rec.Code != 200 || rec.Body.String() != "ok" {
		t.Fatalf("strip slashes: code=%d body=%q", rec.Code, rec.Body)
	}
	if rec := run(m, httptest.NewRequest("GET", "/health", nil)); rec.Code != 200 {
		t.Fatalf("heartbeat = %d", rec.Code)
	}
	if rec := run(m, httptest.NewRequest("GET", "/boom", nil)); rec.Code != 500 {
		t.Fatalf("panic = %d", rec.Code)
	}
}

func TestMountAPIV1(t *testing.T) {
	t.Parallel()

	r := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(r, nil, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})
	if rec := run(r.Mux(), httptest.NewRequest("GET", "/api/v1/ping", nil)); rec.Code != 200 {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestMountUnversioned_SharesStack(t *testing.T) {
	t.Parallel()

	hits := 0
	stack := []func(http.Handler) http.Handler{func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}}
	mount := func(api Router) {
		api.Route("/checkin", func(c Router) {
			Get(c, "/", func(*http.Request) (any, error) { return "ok", nil })
		})
	}

	r := phttp.AdaptChi(chi.NewRouter())
	MountAPIV1(r, stack, mount)
	MountUnversioned(r, stack, mount)

	for _, p := range []string{"/api/v1/checkin", "/checkin"} {
		if rec := run(r.Mux(), httptest.NewRequest("GET", p, nil)); rec.Code != 200 {
			t.Fatalf("%s = %d", p, rec.Code)
		}
	}
	if hits != 2 {
		t.Fatalf("stack hits = %d", hits)
	}
}
