// Package modkit wires feature modules into the HTTP surface. A module
// bundles its repo, service, and handlers behind one constructor; the
// composition root builds each one with shared Deps and mounts them here
package modkit

import (
	"net/http"

	"chartbox/internal/modkit/httpkit"
	"chartbox/internal/modkit/repokit"
	"chartbox/internal/platform/config"
	"chartbox/internal/platform/logger"
	pstrings "chartbox/internal/platform/strings"
)

// Deps are the shared dependencies handed to every module constructor
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// Module is the mountable unit the composition root works with
type Module interface {
	// Name labels the module in logs and panics
	Name() string
	// Prefix is the route prefix the module mounts under, e.g. "/charts"
	Prefix() string
	// MountRoutes attaches the module's endpoints below the API root
	MountRoutes(r httpkit.Router)
}

// Mount applies the shared middleware stack under prefix and mounts every
// module below it. Module names and prefixes are checked here so a
// misconfigured module fails the boot, not a request
func Mount(r httpkit.Router, prefix string, mw []func(http.Handler) http.Handler, mods ...Module) {
	r.Route(pstrings.MustPrefix(prefix), func(api httpkit.Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		for _, m := range mods {
			pstrings.MustString(m.Name(), "module name")
			pstrings.MustPrefix(m.Prefix())
			m.MountRoutes(api)
		}
	})
}
