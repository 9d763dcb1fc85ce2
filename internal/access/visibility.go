package access

import "signet/internal/domain/models/signing"

type visibilityRole struct {
	visibility signing.Visibility
	role       signing.TeamMemberRole
}

// visibilityTable lists every (visibility, role) pairing that grants
// access. Pairings not listed are denied.
var visibilityTable = map[visibilityRole]bool{
	{signing.VisibilityEveryone, signing.TeamMemberRoleAdmin}:          true,
	{signing.VisibilityEveryone, signing.TeamMemberRoleManager}:        true,
	{signing.VisibilityEveryone, signing.TeamMemberRoleMember}:         true,
	{signing.VisibilityManagerAndAbove, signing.TeamMemberRoleAdmin}:   true,
	{signing.VisibilityManagerAndAbove, signing.TeamMemberRoleManager}: true,
	{signing.VisibilityAdmin, signing.TeamMemberRoleAdmin}:             true,
}

// CanView reports whether a team member with role may view a team-owned
// resource with the given visibility.
func CanView(visibility signing.Visibility, role signing.TeamMemberRole) bool {
	return visibilityTable[visibilityRole{visibility, role}]
}

// MinimumRole returns the lowest-ranked role that may view a resource
// with the given visibility, and false if no role can.
func MinimumRole(visibility signing.Visibility) (signing.TeamMemberRole, bool) {
	for i := len(signing.TeamMemberRoles) - 1; i >= 0; i-- {
		role := signing.TeamMemberRoles[i]
		if CanView(visibility, role) {
			return role, true
		}
	}
	return "", false
}
