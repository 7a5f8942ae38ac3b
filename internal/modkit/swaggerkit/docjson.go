package swaggerkit

import (
	_ "embed"
	"net/http"
)

// openapi.json documents POST /checkin and the meta routes
//
//go:embed openapi.json
var openapiDoc []byte

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(openapiDoc)
}
