package signing

import (
	"signet/internal/access"
	"signet/internal/domain/models/signing"
)

// ResourceRequest identifies a document or template as addressed by a URL.
// ID is the raw path segment; a malformed id is treated like a denial.
type ResourceRequest struct {
	TeamURL string `json:"team_url,omitempty"`
	ID      string `json:"id"`
}

// DocumentPage is everything a document view needs after access is granted.
// Document.Meta.Password holds the decrypted password, if one is set.
type DocumentPage struct {
	Document      *signing.Document   `json:"document"`
	Recipients    []signing.Recipient `json:"recipients"`
	Fields        []signing.Field     `json:"fields"`
	Team          *signing.Team       `json:"team,omitempty"`
	DocumentsPath string              `json:"documents_path"`
}

// TemplatePage is everything a template view needs after access is granted.
type TemplatePage struct {
	Template      *signing.Template   `json:"template"`
	Recipients    []signing.Recipient `json:"recipients"`
	Fields        []signing.Field     `json:"fields"`
	Team          *signing.Team       `json:"team,omitempty"`
	TemplatesPath string              `json:"templates_path"`
	DocumentsPath string              `json:"documents_path"`
	DirectLinkURL string              `json:"direct_link_url,omitempty"` // Absolute share URL when the link is enabled
}

// DirectTemplatePage is the restricted view served to a direct-link signer.
// Only the designated recipient and its fields are included.
type DirectTemplatePage struct {
	Token         string             `json:"token"`
	Template      *signing.Template  `json:"template"`
	Recipient     *signing.Recipient `json:"recipient"`
	Fields        []signing.Field    `json:"fields"`
	HidePoweredBy bool               `json:"hide_powered_by"`
}

// AccessExplanation reports a raw access decision for diagnostics.
type AccessExplanation struct {
	Kind       access.Kind     `json:"kind"`
	ResourceID string          `json:"resource_id"`
	TeamURL    string          `json:"team_url,omitempty"`
	Found      bool            `json:"found"`
	Decision   access.Decision `json:"decision"`

	// MinimumRole is the lowest team role the resource's visibility admits.
	// Empty for personal or missing resources.
	MinimumRole signing.TeamMemberRole `json:"minimum_role,omitempty"`
}

// TeamPermissions lists what the requesting member may do in a team.
type TeamPermissions struct {
	TeamID          int64                    `json:"team_id"`
	TeamURL         string                   `json:"team_url"`
	Role            signing.TeamMemberRole   `json:"role"`
	Actions         []access.TeamAction      `json:"actions"`
	ManageableRoles []signing.TeamMemberRole `json:"manageable_roles"`
}
