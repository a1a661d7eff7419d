// Package module assembles the chart catalog: repo, service, and handlers
// behind the /charts prefix
package module

import (
	"chartbox/internal/modkit"
	"chartbox/internal/modkit/httpkit"
	"chartbox/internal/platform/net/middleware"
	"chartbox/internal/services/charts/domain"

	chartshttp "chartbox/internal/services/charts/http"
	"chartbox/internal/services/charts/repo"
	"chartbox/internal/services/charts/service"
)

// PortsIn are the cross-module dependencies charts takes from accounts:
// session auth for the mutation routes and the moderation check
type PortsIn struct {
	Auth  middleware.AuthPort
	Authz domain.AuthzPort
}

// Module is the chart catalog mounted at /charts
type Module struct {
	svc *service.Service
	in  PortsIn
}

// New builds the module from shared deps and the accounts ports
func New(deps modkit.Deps, in PortsIn) *Module {
	o := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		MaxPageSize:    o.MaxPageSize,
		MaxRandomCount: o.MaxRandomCount,
		MaxBatchSize:   o.MaxBatchSize,
	})
	return &Module{svc: svc, in: in}
}

// Service exposes the chart service for cross-module wiring
func (m *Module) Service() *service.Service { return m.svc }

// Name implements modkit.Module
func (m *Module) Name() string { return "charts" }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "/charts" }

// MountRoutes attaches the chart endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		chartshttp.Register(rr, m.svc, m.in.Auth, m.in.Authz)
	})
}
