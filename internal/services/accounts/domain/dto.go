package domain

// LoginInput authenticates a platform client and opens a session slot
type LoginInput struct {
	ID       string      `json:"id" validate:"required"`
	Handle   int64       `json:"handle" validate:"required"`
	Username string      `json:"username" validate:"required"`
	Type     SessionType `json:"session_type" validate:"required,oneof=game external"`
	TTLMs    int64       `json:"ttl_ms" validate:"omitempty,min=60000,max=86400000"`
}

// HandleInput names an account by its numeric handle
type HandleInput struct {
	Handle int64 `json:"handle" validate:"required"`
}

// IDInput names an account by id
type IDInput struct {
	ID string `json:"id" validate:"required"`
}

// BatchInput names a set of accounts
type BatchInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=50,dive,required"`
}

// RoleInput moves an account to a role on the none < mod < admin lattice
type RoleInput struct {
	ID   string `json:"id" validate:"required"`
	Role Role   `json:"role" validate:"required,oneof=none mod admin"`
}

// BanInput sets the banned flag
type BanInput struct {
	ID     string `json:"id" validate:"required"`
	Banned bool   `json:"banned"`
}

// DeleteInput removes an account; confirm signals stored files are handled
type DeleteInput struct {
	Confirm bool `json:"confirm"`
}

// CooldownInput stamps an upload cooldown on an account
type CooldownInput struct {
	ID      string `json:"id" validate:"required"`
	Seconds int64  `json:"seconds" validate:"gte=0,max=604800"`
}

// NotifyInput pushes an entry into an account's inbox
type NotifyInput struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=4000"`
}

// OAuthLinkInput stores provider credentials for the viewer
type OAuthLinkInput struct {
	Provider Provider    `json:"provider" validate:"required,oneof=discord"`
	Tokens   OAuthTokens `json:"tokens"`
}

// OAuthInput names a linked provider
type OAuthInput struct {
	Provider Provider `json:"provider" validate:"required,oneof=discord"`
}

// NotificationListInput pages through the viewer's inbox
type NotificationListInput struct {
	Limit      int  `json:"limit" validate:"omitempty,min=1,max=100"`
	Page       int  `json:"page" validate:"gte=0"`
	OnlyUnread bool `json:"only_unread"`
}

// NotificationInput names one inbox entry
type NotificationInput struct {
	ID string `json:"id" validate:"required"`
}

// NotificationReadInput toggles the read flag on one entry
type NotificationReadInput struct {
	ID   string `json:"id" validate:"required"`
	Read bool   `json:"read"`
}
