// Package module assembles accounts: repo, service, and handlers behind
// the /accounts prefix, plus the session auth port the rest of the API
// mounts its protected routes with
package module

import (
	"net/http"

	"chartbox/internal/modkit"
	"chartbox/internal/modkit/httpkit"
	"chartbox/internal/platform/net/middleware"
	"chartbox/internal/services/accounts/domain"

	accountshttp "chartbox/internal/services/accounts/http"
	"chartbox/internal/services/accounts/repo"
	"chartbox/internal/services/accounts/service"
)

// Ports is what accounts offers other modules
type Ports struct {
	Service domain.ServicePort
	Auth    middleware.AuthPort
}

// Module is the accounts surface mounted at /accounts
type Module struct {
	svc   *service.Service
	ports Ports
}

// New builds the module from shared deps
func New(deps modkit.Deps) *Module {
	o := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		SessionTTLMs:  o.SessionTTLMs,
		MaxBatchSize:  o.MaxBatchSize,
		MaxInboxLimit: o.MaxInboxLimit,
	})
	m := &Module{svc: svc}
	m.ports = Ports{Service: svc, Auth: &sessionPort{svc: svc}}
	return m
}

// Ports exposes the account service and session auth for cross-module wiring
func (m *Module) Ports() Ports { return m.ports }

// Name implements modkit.Module
func (m *Module) Name() string { return "accounts" }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "/accounts" }

// MountRoutes attaches the account endpoints under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		accountshttp.Register(rr, m.svc, m.ports.Auth)
	})
}

// sessionPort adapts the service's token authentication to the middleware seam
type sessionPort struct{ svc *service.Service }

// Parse implements middleware.AuthPort
func (p *sessionPort) Parse(r *http.Request) (string, error) {
	token, err := httpkit.Bearer(r)
	if err != nil {
		return "", err
	}
	a, err := p.svc.Authenticate(r.Context(), token)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}
