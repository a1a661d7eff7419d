// Package http provides HTTP transport for accounts, sessions, and inboxes
package http

import (
	stdhttp "net/http"
	"time"

	"chartbox/internal/modkit/httpkit"
	perr "chartbox/internal/platform/errors"
	"chartbox/internal/platform/net/middleware"
	"chartbox/internal/services/accounts/domain"
	svc "chartbox/internal/services/accounts/service"
)

// Register mounts account endpoints on the given router.
// Login and public profile reads are open; everything touching the
// viewer's own account sits behind bearer auth
func Register(r httpkit.Router, s *svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
	httpkit.PostJSON[domain.HandleInput](r, "/by-handle", h.byHandle)
	httpkit.PostJSON[domain.IDInput](r, "/public", h.public)
	httpkit.PostJSON[domain.BatchInput](r, "/public/batch", h.publicBatch)
	httpkit.PostJSON[domain.IDInput](r, "/stats", h.stats)

	private := func(pr httpkit.Router) {
		httpkit.Post(pr, "/me", h.me)
		httpkit.PostJSON[domain.DeleteInput](pr, "/delete", h.delete)

		httpkit.PostJSON[domain.OAuthLinkInput](pr, "/oauth/link", h.oauthLink)
		httpkit.PostJSON[domain.OAuthInput](pr, "/oauth/unlink", h.oauthUnlink)
		httpkit.PostJSON[domain.OAuthInput](pr, "/oauth/get", h.oauthGet)

		httpkit.PostJSON[domain.NotificationListInput](pr, "/notifications/list", h.notifications)
		httpkit.PostJSON[domain.NotificationInput](pr, "/notifications/get", h.notification)
		httpkit.PostJSON[domain.NotificationReadInput](pr, "/notifications/read", h.notificationRead)
		httpkit.PostJSON[domain.NotificationInput](pr, "/notifications/delete", h.notificationDelete)

		// admin only
		httpkit.PostJSON[domain.RoleInput](pr, "/role", h.setRole)
		httpkit.PostJSON[domain.BanInput](pr, "/ban", h.setBanned)
		httpkit.PostJSON[domain.CooldownInput](pr, "/cooldown", h.setCooldown)
		httpkit.PostJSON[domain.NotifyInput](pr, "/notify", h.notify)
	}
	if auth != nil {
		httpkit.Protected(r, auth, private)
	} else {
		private(r)
	}
}

type handlers struct{ svc *svc.Service }

func (h *handlers) requireAdmin(r *stdhttp.Request) error {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return err
	}
	ok, err := h.svc.IsAdmin(r.Context(), viewer)
	if err != nil {
		return err
	}
	if !ok {
		return perr.Forbiddenf("admin role required")
	}
	return nil
}

// @Summary Log in and open a session slot
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Request"
// @Success 200 {object} domain.SessionData "ok"
// @Router /accounts/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in.ID, in.Handle, in.Username, in.Type, in.TTLMs)
}

// @Summary Look up an account by numeric handle
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.HandleInput true "Request"
// @Success 200 {object} domain.PublicAccount "ok"
// @Router /accounts/by-handle [post]
func (h *handlers) byHandle(r *stdhttp.Request, in domain.HandleInput) (any, error) {
	a, err := h.svc.GetByHandle(r.Context(), in.Handle)
	if err != nil {
		return nil, err
	}
	return a.Public(), nil
}

// @Summary Public account profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.IDInput true "Request"
// @Success 200 {object} domain.PublicAccount "ok"
// @Router /accounts/public [post]
func (h *handlers) public(r *stdhttp.Request, in domain.IDInput) (any, error) {
	return h.svc.GetPublic(r.Context(), in.ID)
}

// @Summary Public profiles for a batch of accounts
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Request"
// @Success 200 {array} domain.PublicAccount "ok"
// @Router /accounts/public/batch [post]
func (h *handlers) publicBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.GetPublicBatch(r.Context(), in.IDs)
}

// @Summary Interaction and chart counters for a profile card
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.IDInput true "Request"
// @Success 200 {object} domain.Stats "ok"
// @Router /accounts/stats [post]
func (h *handlers) stats(r *stdhttp.Request, in domain.IDInput) (any, error) {
	return h.svc.Stats(r.Context(), in.ID)
}

// @Summary The authenticated account, private fields included
// @Tags Accounts
// @Produce json
// @Success 200 {object} domain.Account "ok"
// @Router /accounts/me [post]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	token, err := httpkit.Bearer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Authenticate(r.Context(), token)
}

// @Summary Delete the authenticated account (confirm required)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.Delete(r.Context(), viewer, in.Confirm)
}

// @Summary Link an OAuth provider to the authenticated account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.OAuthLinkInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/oauth/link [post]
func (h *handlers) oauthLink(r *stdhttp.Request, in domain.OAuthLinkInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.LinkOAuth(r.Context(), viewer, in.Provider, in.Tokens)
}

// @Summary Unlink an OAuth provider
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.OAuthInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/oauth/unlink [post]
func (h *handlers) oauthUnlink(r *stdhttp.Request, in domain.OAuthInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return nil, h.svc.UnlinkOAuth(r.Context(), viewer, in.Provider)
}

// @Summary Stored credentials for a linked provider
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.OAuthInput true "Request"
// @Success 200 {object} domain.OAuthTokens "ok"
// @Router /accounts/oauth/get [post]
func (h *handlers) oauthGet(r *stdhttp.Request, in domain.OAuthInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.GetOAuth(r.Context(), viewer, in.Provider)
}

// @Summary Page through the viewer's inbox
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.NotificationListInput true "Request"
// @Success 200 {object} domain.NotificationPage "ok"
// @Router /accounts/notifications/list [post]
func (h *handlers) notifications(r *stdhttp.Request, in domain.NotificationListInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Notifications(r.Context(), viewer, in.Limit, in.Page, in.OnlyUnread)
}

// @Summary Fetch one inbox entry; fetching marks it read
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.NotificationInput true "Request"
// @Success 200 {object} domain.Notification "ok"
// @Router /accounts/notifications/get [post]
func (h *handlers) notification(r *stdhttp.Request, in domain.NotificationInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Notification(r.Context(), in.ID, viewer)
}

// @Summary Toggle the read flag on one inbox entry
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.NotificationReadInput true "Request"
// @Success 200 {object} domain.Notification "ok"
// @Router /accounts/notifications/read [post]
func (h *handlers) notificationRead(r *stdhttp.Request, in domain.NotificationReadInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SetNotificationRead(r.Context(), in.ID, viewer, in.Read)
}

// @Summary Delete one inbox entry
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.NotificationInput true "Request"
// @Success 200 {object} domain.Notification "ok"
// @Router /accounts/notifications/delete [post]
func (h *handlers) notificationDelete(r *stdhttp.Request, in domain.NotificationInput) (any, error) {
	viewer, err := httpkit.Viewer(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DeleteNotification(r.Context(), in.ID, viewer)
}

// @Summary Move an account on the role lattice (admins only)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.RoleInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/role [post]
func (h *handlers) setRole(r *stdhttp.Request, in domain.RoleInput) (any, error) {
	if err := h.requireAdmin(r); err != nil {
		return nil, err
	}
	return nil, h.svc.SetRole(r.Context(), in.ID, in.Role)
}

// @Summary Ban or unban an account (admins only)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.BanInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/ban [post]
func (h *handlers) setBanned(r *stdhttp.Request, in domain.BanInput) (any, error) {
	if err := h.requireAdmin(r); err != nil {
		return nil, err
	}
	return nil, h.svc.SetBanned(r.Context(), in.ID, in.Banned)
}

// @Summary Stamp an upload cooldown on an account (admins only)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.CooldownInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/cooldown [post]
func (h *handlers) setCooldown(r *stdhttp.Request, in domain.CooldownInput) (any, error) {
	if err := h.requireAdmin(r); err != nil {
		return nil, err
	}
	return nil, h.svc.SetUploadCooldown(r.Context(), in.ID, time.Duration(in.Seconds)*time.Second)
}

// @Summary Push an entry into an account's inbox (admins only)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body domain.NotifyInput true "Request"
// @Success 200 {object} nil "ok"
// @Router /accounts/notify [post]
func (h *handlers) notify(r *stdhttp.Request, in domain.NotifyInput) (any, error) {
	if err := h.requireAdmin(r); err != nil {
		return nil, err
	}
	return nil, h.svc.AddNotification(r.Context(), in.ID, in.Title, in.Content)
}
