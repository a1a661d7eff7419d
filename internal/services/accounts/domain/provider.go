package domain

// Provider is a closed enum of OAuth providers the platform links against
type Provider string

// Linked providers
const (
	ProviderDiscord Provider = "discord"
)

// Valid reports whether p is a supported provider
func (p Provider) Valid() bool { return p == ProviderDiscord }
