// Package service enforces account validation ahead of storage: session
// types, confirm flags, and role values are all checked here first
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	perr "chartbox/internal/platform/errors"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/services/accounts/domain"
	"chartbox/internal/services/accounts/repo"
)

// defaultInboxLimit is the page size when the caller does not ask for one
const defaultInboxLimit = 10

// Config for the accounts service
type Config struct {
	SessionTTLMs  int64
	MaxBatchSize  int
	MaxInboxLimit int
}

// Service implements domain.ServicePort
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	cfg    Config
	now    func() time.Time
}

// New constructs the accounts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.SessionTTLMs <= 0 {
		cfg.SessionTTLMs = domain.DefaultSessionTTLMs
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 50
	}
	if cfg.MaxInboxLimit <= 0 {
		cfg.MaxInboxLimit = 100
	}
	return &Service{db: db, binder: binder, cfg: cfg, now: time.Now}
}

func (s *Service) storage() repo.Storage { return s.binder.Bind(s.db) }

func (s *Service) nowMs() int64 { return s.now().UnixMilli() }

// Login implements domain.ServicePort. The upsert and the slot allocation
// run in one transaction so a first login can never race its own slot seed
func (s *Service) Login(
	ctx context.Context,
	id string,
	handle int64,
	username string,
	t domain.SessionType,
	ttlMs int64,
) (domain.SessionData, error) {
	if id == "" || username == "" {
		return domain.SessionData{}, perr.Validationf("account id and username required")
	}
	if !t.Valid() {
		return domain.SessionData{}, perr.Validationf("invalid session type %q, must be %q or %q",
			t, domain.SessionGame, domain.SessionExternal)
	}
	if ttlMs <= 0 {
		ttlMs = s.cfg.SessionTTLMs
	}

	var out domain.SessionData
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)
		if err := st.Upsert(ctx, id, handle, username); err != nil {
			return err
		}
		now := s.nowMs()
		sd, err := st.AllocateSession(ctx, id, t, uuid.NewString(), now, now+ttlMs)
		if err != nil {
			return err
		}
		out = sd
		return nil
	})
	return out, err
}

// Authenticate implements domain.ServicePort
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Account, error) {
	if token == "" {
		return domain.Account{}, perr.Unauthorizedf("missing session token")
	}
	a, err := s.storage().BySession(ctx, token, s.nowMs())
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Account{}, perr.Unauthorizedf("invalid or expired session")
		}
		return domain.Account{}, err
	}
	if a.Banned {
		return domain.Account{}, perr.Forbiddenf("account is banned")
	}
	return a, nil
}

// GetByHandle implements domain.ServicePort
func (s *Service) GetByHandle(ctx context.Context, handle int64) (domain.Account, error) {
	return s.storage().ByHandle(ctx, handle)
}

// GetPublic implements domain.ServicePort
func (s *Service) GetPublic(ctx context.Context, id string) (domain.PublicAccount, error) {
	if id == "" {
		return domain.PublicAccount{}, perr.Validationf("account id required")
	}
	return s.storage().Public(ctx, id)
}

// GetPublicBatch implements domain.ServicePort
func (s *Service) GetPublicBatch(ctx context.Context, ids []string) ([]domain.PublicAccount, error) {
	if len(ids) > s.cfg.MaxBatchSize {
		return nil, perr.Validationf("at most %d ids per batch", s.cfg.MaxBatchSize)
	}
	return s.storage().PublicBatch(ctx, ids)
}

// Stats implements domain.ServicePort
func (s *Service) Stats(ctx context.Context, id string) (domain.Stats, error) {
	if id == "" {
		return domain.Stats{}, perr.Validationf("account id required")
	}
	return s.storage().Stats(ctx, id)
}

// SetRole implements domain.ServicePort
func (s *Service) SetRole(ctx context.Context, id string, role domain.Role) error {
	if id == "" {
		return perr.Validationf("account id required")
	}
	if !role.Valid() {
		return perr.Validationf("unknown role %q", role)
	}
	return s.storage().SetRole(ctx, id, role)
}

// SetBanned implements domain.ServicePort
func (s *Service) SetBanned(ctx context.Context, id string, banned bool) error {
	if id == "" {
		return perr.Validationf("account id required")
	}
	return s.storage().SetBanned(ctx, id, banned)
}

// Delete implements domain.ServicePort. The confirm flag signals the
// caller owns cleanup of the account's stored chart files
func (s *Service) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return perr.Validationf("deletion not confirmed; stored files must be purged separately")
	}
	if id == "" {
		return perr.Validationf("account id required")
	}
	return s.storage().Delete(ctx, id)
}

// SetUploadCooldown implements domain.ServicePort
func (s *Service) SetUploadCooldown(ctx context.Context, id string, d time.Duration) error {
	if id == "" {
		return perr.Validationf("account id required")
	}
	if d < 0 {
		return perr.Validationf("cooldown must be non-negative")
	}
	return s.storage().SetUploadCooldown(ctx, id, s.now().Add(d).Unix())
}

// LinkOAuth implements domain.ServicePort
func (s *Service) LinkOAuth(ctx context.Context, id string, p domain.Provider, tok domain.OAuthTokens) error {
	if id == "" {
		return perr.Validationf("account id required")
	}
	if !p.Valid() {
		return perr.Validationf("unknown provider %q", p)
	}
	return s.storage().LinkOAuth(ctx, id, p, tok)
}

// UnlinkOAuth implements domain.ServicePort
func (s *Service) UnlinkOAuth(ctx context.Context, id string, p domain.Provider) error {
	if id == "" {
		return perr.Validationf("account id required")
	}
	if !p.Valid() {
		return perr.Validationf("unknown provider %q", p)
	}
	return s.storage().UnlinkOAuth(ctx, id, p)
}

// GetOAuth implements domain.ServicePort
func (s *Service) GetOAuth(ctx context.Context, id string, p domain.Provider) (domain.OAuthTokens, error) {
	if id == "" {
		return domain.OAuthTokens{}, perr.Validationf("account id required")
	}
	if !p.Valid() {
		return domain.OAuthTokens{}, perr.Validationf("unknown provider %q", p)
	}
	return s.storage().GetOAuth(ctx, id, p)
}

// AddNotification implements domain.ServicePort
func (s *Service) AddNotification(ctx context.Context, userID, title, content string) error {
	if userID == "" || title == "" {
		return perr.Validationf("user id and title required")
	}
	return s.storage().AddNotification(ctx, userID, title, content)
}

// Notifications implements domain.ServicePort
func (s *Service) Notifications(
	ctx context.Context,
	userID string,
	limit, page int,
	onlyUnread bool,
) (domain.NotificationPage, error) {
	if userID == "" {
		return domain.NotificationPage{}, perr.Validationf("user id required")
	}
	if page < 0 {
		return domain.NotificationPage{}, perr.Validationf("page must be non-negative")
	}
	if limit <= 0 {
		limit = defaultInboxLimit
	}
	if limit > s.cfg.MaxInboxLimit {
		limit = s.cfg.MaxInboxLimit
	}

	st := s.storage()
	items, err := st.Notifications(ctx, userID, limit, page*limit, onlyUnread)
	if err != nil {
		return domain.NotificationPage{}, err
	}
	total, unread, err := st.NotificationCounts(ctx, userID)
	if err != nil {
		return domain.NotificationPage{}, err
	}
	return domain.NotificationPage{Total: total, Unread: unread, Notifications: items}, nil
}

// Notification implements domain.ServicePort; fetching marks the entry read
func (s *Service) Notification(ctx context.Context, id, userID string) (domain.Notification, error) {
	if id == "" || userID == "" {
		return domain.Notification{}, perr.Validationf("notification id and user id required")
	}
	return s.storage().ReadNotification(ctx, id, userID)
}

// SetNotificationRead implements domain.ServicePort
func (s *Service) SetNotificationRead(ctx context.Context, id, userID string, read bool) (domain.Notification, error) {
	if id == "" || userID == "" {
		return domain.Notification{}, perr.Validationf("notification id and user id required")
	}
	return s.storage().SetNotificationRead(ctx, id, userID, read)
}

// DeleteNotification implements domain.ServicePort
func (s *Service) DeleteNotification(ctx context.Context, id, userID string) (domain.Notification, error) {
	if id == "" || userID == "" {
		return domain.Notification{}, perr.Validationf("notification id and user id required")
	}
	return s.storage().DeleteNotification(ctx, id, userID)
}

// CanModerate implements the charts authz seam
func (s *Service) CanModerate(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, nil
	}
	p, err := s.storage().Public(ctx, accountID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return !p.Banned && p.Role.AtLeast(domain.RoleMod), nil
}

// IsAdmin reports whether the account holds the admin role
func (s *Service) IsAdmin(ctx context.Context, accountID string) (bool, error) {
	p, err := s.storage().Public(ctx, accountID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return !p.Banned && p.Role.AtLeast(domain.RoleAdmin), nil
}
