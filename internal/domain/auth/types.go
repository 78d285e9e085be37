package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

// DefaultDiscriminator is the fallback Discord discriminator for accounts
// migrated to the new username system.
const DefaultDiscriminator = "0000"

// Identity represents the Discord user record returned by the identity
// provider. Immutable once fetched; never persisted by this subsystem.
type Identity struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

// GuildMembership is a Discord guild the identity belongs to, with the
// permission bitmask Discord serializes as a decimal string.
type GuildMembership struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Permissions string `json:"permissions"`
}

// Principal is the authenticated application-facing identity. It is encoded
// into the session token at login and reconstructed by verification; the
// token IS the record, nothing is persisted server-side.
type Principal struct {
	ID            string   `json:"id"` // internal id, "discord-{externalId}"
	DiscordID     string   `json:"discordId"`
	Username      string   `json:"username"`
	Discriminator string   `json:"discriminator"`
	Avatar        string   `json:"avatar"`
	Roles         []string `json:"roles"`
	IsAdmin       bool     `json:"isAdmin"`
}

// NewPrincipal builds a Principal for a verified guild member.
func NewPrincipal(identity Identity, isAdmin bool) Principal {
	disc := identity.Discriminator
	if disc == "" {
		disc = DefaultDiscriminator
	}
	return Principal{
		ID:            "discord-" + identity.ID,
		DiscordID:     identity.ID,
		Username:      identity.Username,
		Discriminator: disc,
		Avatar:        identity.Avatar,
		Roles:         []string{"Member"},
		IsAdmin:       isAdmin,
	}
}
