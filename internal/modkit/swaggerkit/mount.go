// Package swaggerkit serves the check-in OpenAPI document and a Swagger UI over it
package swaggerkit

import (
	"net/http"

	phttp "healthdash/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPrefix is where the UI lives, the document sits at DocsPrefix+"/doc.json"
const DocsPrefix = "/api/docs"

// Mount the docs when enabled. The bare prefix redirects to the UI index
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	ui := httpSwagger.Handler(httpSwagger.URL(DocsPrefix + "/doc.json"))

	r.Get(DocsPrefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPrefix+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPrefix+"/doc.json", serveDocJSON)
	r.Get(DocsPrefix+"/*", ui.ServeHTTP)
}
