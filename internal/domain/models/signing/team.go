package signing

import "time"

// TeamMemberRole is a member's role within one team.
type TeamMemberRole string

const (
	TeamMemberRoleAdmin   TeamMemberRole = "ADMIN"
	TeamMemberRoleManager TeamMemberRole = "MANAGER"
	TeamMemberRoleMember  TeamMemberRole = "MEMBER"
)

// Rank orders roles by privilege. Unknown roles rank below MEMBER.
func (r TeamMemberRole) Rank() int {
	switch r {
	case TeamMemberRoleAdmin:
		return 3
	case TeamMemberRoleManager:
		return 2
	case TeamMemberRoleMember:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the known roles.
func (r TeamMemberRole) Valid() bool {
	return r.Rank() > 0
}

// TeamMemberRoles lists all roles, highest privilege first.
var TeamMemberRoles = []TeamMemberRole{
	TeamMemberRoleAdmin,
	TeamMemberRoleManager,
	TeamMemberRoleMember,
}

type Team struct {
	ID            int64       `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	URL           string      `json:"url" db:"url"`
	OwnerUserID   int64       `json:"owner_user_id" db:"owner_user_id"`
	HidePoweredBy bool        `json:"hide_powered_by" db:"branding_hide_powered_by"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	CurrentMember *TeamMember `json:"current_member,omitempty"` // Set when loaded for a user
}

type TeamMember struct {
	ID        int64          `json:"id" db:"id"`
	TeamID    int64          `json:"team_id" db:"team_id"`
	UserID    int64          `json:"user_id" db:"user_id"`
	Role      TeamMemberRole `json:"role" db:"role"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
