// Package domain holds the account, session, and notification types
package domain

import "time"

// Account is the full account row, private fields included
type Account struct {
	ID             string     `json:"id"`
	Handle         int64      `json:"handle"`
	Username       string     `json:"username"`
	Role           Role       `json:"role"`
	Banned         bool       `json:"banned"`
	UploadCooldown *time.Time `json:"upload_cooldown"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// PublicAccount is the subset of an account safe to show to anyone
type PublicAccount struct {
	ID       string `json:"id"`
	Handle   int64  `json:"handle"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Banned   bool   `json:"banned"`
}

// Public projects the account to its public subset
func (a Account) Public() PublicAccount {
	return PublicAccount{ID: a.ID, Handle: a.Handle, Username: a.Username, Role: a.Role, Banned: a.Banned}
}

// SessionData is the persisted token and expiry returned by the allocator
type SessionData struct {
	Token     string `json:"session_key"`
	ExpiresAt int64  `json:"expires"`
}

// OAuthTokens are the stored credentials for one linked provider
type OAuthTokens struct {
	ExternalID   string `json:"external_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Stats aggregates an account's interaction and chart counters
type Stats struct {
	ID               string `json:"id"`
	Handle           int64  `json:"handle"`
	LikedCharts      int64  `json:"liked_charts_count"`
	Comments         int64  `json:"comments_count"`
	ChartsPublished  int64  `json:"charts_published"`
	LikesReceived    int64  `json:"likes_received"`
	CommentsReceived int64  `json:"comments_received"`
}

// Notification is one inbox entry; content is only loaded on single fetch
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
