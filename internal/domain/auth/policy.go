package auth

import "strconv"

// permissionAdministrator is the administrator bit in Discord's guild
// permission bitmask.
const permissionAdministrator = 0x8

// IsGuildMember reports whether any membership matches the given guild id.
// Returns false when guildID is unset, so a missing configuration fails safe.
func IsGuildMember(memberships []GuildMembership, guildID string) bool {
	if guildID == "" {
		return false
	}
	for _, m := range memberships {
		if m.ID == guildID {
			return true
		}
	}
	return false
}

// HasAdministratorAccess reports whether the membership matching guildID
// carries the administrator permission bit. Returns false when guildID is
// unset, no membership matches, or the permission field is not an integer.
func HasAdministratorAccess(memberships []GuildMembership, guildID string) bool {
	if guildID == "" {
		return false
	}
	for _, m := range memberships {
		if m.ID != guildID {
			continue
		}
		perms, err := strconv.ParseInt(m.Permissions, 10, 64)
		if err != nil {
			return false
		}
		return perms&permissionAdministrator != 0
	}
	return false
}
