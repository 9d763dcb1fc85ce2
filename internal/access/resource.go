package access

import "signet/internal/domain/models/signing"

// Kind distinguishes documents from templates.
type Kind int

const (
	KindDocument Kind = iota
	KindTemplate
)

func (k Kind) String() string {
	if k == KindTemplate {
		return "template"
	}
	return "document"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Resource is the view of a document or template the resolver needs.
// Recipients and Fields must be fully loaded by the caller.
type Resource struct {
	Kind              Kind
	ID                int64
	OwnerID           int64
	TeamID            *int64
	Visibility        signing.Visibility
	Recipients        []signing.Recipient
	Fields            []signing.Field
	AuthOptions       signing.AuthOptions
	DirectLink        *signing.DirectLink
	EncryptedPassword *string
}

// DocumentResource builds a Resource from a document and its related rows.
func DocumentResource(doc *signing.Document, recipients []signing.Recipient, fields []signing.Field) *Resource {
	if doc == nil {
		return nil
	}
	return &Resource{
		Kind:              KindDocument,
		ID:                doc.ID,
		OwnerID:           doc.UserID,
		TeamID:            doc.TeamID,
		Visibility:        doc.Visibility,
		Recipients:        recipients,
		Fields:            fields,
		AuthOptions:       doc.AuthOptions,
		EncryptedPassword: metaPassword(doc.Meta),
	}
}

// TemplateResource builds a Resource from a template and its related rows.
func TemplateResource(tmpl *signing.Template, recipients []signing.Recipient, fields []signing.Field) *Resource {
	if tmpl == nil {
		return nil
	}
	return &Resource{
		Kind:              KindTemplate,
		ID:                tmpl.ID,
		OwnerID:           tmpl.UserID,
		TeamID:            tmpl.TeamID,
		Visibility:        tmpl.Visibility,
		Recipients:        recipients,
		Fields:            fields,
		AuthOptions:       tmpl.AuthOptions,
		DirectLink:        tmpl.DirectLink,
		EncryptedPassword: metaPassword(tmpl.Meta),
	}
}

func metaPassword(meta *signing.DocumentMeta) *string {
	if meta == nil || meta.Password == nil || *meta.Password == "" {
		return nil
	}
	return meta.Password
}

// Requester identifies who is asking. The zero value is anonymous.
type Requester struct {
	UserID        int64
	Email         string
	EmailVerified bool
}

// Anonymous is the requester for unauthenticated requests.
var Anonymous = Requester{}

// Authenticated reports whether the requester has a signed-in account.
func (r Requester) Authenticated() bool {
	return r.UserID != 0
}

// TeamContext is the team the requester is acting in and their role there.
type TeamContext struct {
	TeamID  int64
	TeamURL string
	Role    signing.TeamMemberRole
}

// TeamContextFor builds a TeamContext from a team loaded for the requester.
// It returns nil when team is nil or the requester is not a member.
func TeamContextFor(team *signing.Team) *TeamContext {
	if team == nil || team.CurrentMember == nil {
		return nil
	}
	return &TeamContext{
		TeamID:  team.ID,
		TeamURL: team.URL,
		Role:    team.CurrentMember.Role,
	}
}
