package httpkit

import "net/http"

// APIV1 is the prefix every module mounts under
const APIV1 = "/api/v1"

// MountAPIV1 mounts modules under APIV1 behind the shared stack
func MountAPIV1(r Router, stack []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIV1, func(api Router) {
		api.Use(stack...)
		mount(api)
	})
}

// MountUnversioned mounts at the root behind the same stack
// check-in clients that predate APIV1 still post to /checkin
func MountUnversioned(r Router, stack []func(http.Handler) http.Handler, mount func(Router)) {
	r.Group(func(root Router) {
		root.Use(stack...)
		mount(root)
	})
}
