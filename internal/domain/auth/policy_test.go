package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAdministratorAccess(t *testing.T) {
	memberships := []GuildMembership{
		{ID: "GUILD1", Name: "Lodestone", Permissions: "8"},
		{ID: "GUILD2", Name: "Other", Permissions: "104324673"},
	}

	tests := []struct {
		name        string
		memberships []GuildMembership
		guildID     string
		want        bool
	}{
		{name: "admin bit set", memberships: memberships, guildID: "GUILD1", want: true},
		{name: "admin bit within larger mask", memberships: []GuildMembership{{ID: "G", Permissions: "2147483655"}}, guildID: "G", want: true},
		{name: "admin bit not set", memberships: memberships, guildID: "GUILD2", want: false},
		{name: "no matching membership", memberships: memberships, guildID: "GUILD3", want: false},
		{name: "empty guild id", memberships: memberships, guildID: "", want: false},
		{name: "empty memberships", memberships: nil, guildID: "GUILD1", want: false},
		{name: "non-numeric permissions", memberships: []GuildMembership{{ID: "G", Permissions: "admin"}}, guildID: "G", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAdministratorAccess(tt.memberships, tt.guildID))
		})
	}
}

func TestIsGuildMember(t *testing.T) {
	memberships := []GuildMembership{{ID: "GUILD1", Permissions: "0"}}

	assert.True(t, IsGuildMember(memberships, "GUILD1"))
	assert.False(t, IsGuildMember(memberships, "GUILD2"))
	assert.False(t, IsGuildMember(memberships, ""))
	assert.False(t, IsGuildMember(nil, "GUILD1"))
}

func TestNewPrincipal(t *testing.T) {
	p := NewPrincipal(Identity{ID: "555", Username: "gamer1", Discriminator: "1234", Avatar: "abc"}, true)

	assert.Equal(t, "discord-555", p.ID)
	assert.Equal(t, "555", p.DiscordID)
	assert.Equal(t, "gamer1", p.Username)
	assert.Equal(t, "1234", p.Discriminator)
	assert.Equal(t, []string{"Member"}, p.Roles)
	assert.True(t, p.IsAdmin)
}

func TestNewPrincipal_DefaultsDiscriminator(t *testing.T) {
	p := NewPrincipal(Identity{ID: "555", Username: "gamer1"}, false)

	assert.Equal(t, DefaultDiscriminator, p.Discriminator)
	assert.False(t, p.IsAdmin)
}
