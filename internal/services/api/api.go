// Package api composes the HTTP API from the account and chart modules
package api

import (
	"chartbox/internal/platform/config"
	"chartbox/internal/platform/logger"
	phttp "chartbox/internal/platform/net/http"
	"chartbox/internal/platform/store"

	"chartbox/internal/modkit"
	"chartbox/internal/modkit/httpkit"
	"chartbox/internal/modkit/swaggerkit"

	accountsmod "chartbox/internal/services/accounts/module"
	chartsmod "chartbox/internal/services/charts/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds the modules and mounts the versioned API onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// accounts first; it owns the session auth port charts mounts behind
	accounts := accountsmod.New(deps)
	ap := accounts.Ports()

	charts := chartsmod.New(deps, chartsmod.PortsIn{
		Auth:  ap.Auth,
		Authz: ap.Service,
	})

	// swagger and the profiler live at the root, outside the versioned prefix
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	modkit.Mount(r, "/api/v1", httpkit.CommonStack(), accounts, charts)
}
