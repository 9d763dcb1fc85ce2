package access

import (
	"fmt"

	"signet/internal/domain"
	"signet/internal/domain/models/signing"
)

// SecretOpener decrypts a stored secret with the process-wide key.
type SecretOpener interface {
	Open(ciphertext string) (string, error)
}

// Resolver evaluates access decisions. It is safe for concurrent use; its
// only state is the secret opener.
type Resolver struct {
	secrets SecretOpener
}

// NewResolver creates a resolver. A nil opener is allowed; resolving a
// password-protected resource then fails with domain.ErrConfiguration.
func NewResolver(secrets SecretOpener) *Resolver {
	return &Resolver{secrets: secrets}
}

// ResolveDocumentAccess decides whether requester may view resource while
// acting in team (nil for personal context). It serves both documents and
// templates.
func (r *Resolver) ResolveDocumentAccess(resource *Resource, requester Requester, team *TeamContext) (Decision, error) {
	if resource == nil {
		return deny(ReasonNotFound), nil
	}

	if !teamMatches(resource, team) {
		return deny(ReasonTeamMismatch), nil
	}

	var decision Decision
	switch {
	case requester.Authenticated() && resource.OwnerID == requester.UserID:
		decision = Decision{Outcome: GrantedFull, Reason: ReasonOwner}
	case isRecipient(resource.Recipients, requester):
		decision = Decision{Outcome: GrantedFull, Reason: ReasonRecipient}
	case resource.TeamID == nil:
		return deny(ReasonNotParticipant), nil
	case CanView(resource.Visibility, team.Role):
		decision = Decision{Outcome: GrantedFull, Reason: ReasonVisibility}
	default:
		return deny(ReasonRoleInsufficient), nil
	}

	return r.withPassword(decision, resource)
}

// ResolveDirectLinkAccess decides whether requester may use the direct
// link identified by token on resource. Team membership is not consulted.
func (r *Resolver) ResolveDirectLinkAccess(resource *Resource, token string, requester Requester) (Decision, error) {
	if resource == nil || resource.DirectLink == nil {
		return deny(ReasonNotFound), nil
	}

	link := resource.DirectLink
	if !link.Enabled || token == "" || link.Token != token {
		return deny(ReasonNotFound), nil
	}

	// Authentication is checked before the designated recipient must exist.
	recipient := findRecipient(resource.Recipients, link.DirectTemplateRecipientID)
	if DerivedAccessAuth(resource.AuthOptions, recipient) == signing.AccessAuthAccount && !requester.Authenticated() {
		return Decision{
			Outcome:        AuthenticationRequired,
			Reason:         ReasonAccountRequired,
			RedirectTarget: signing.EmbedDirectPath(token),
		}, nil
	}

	if recipient == nil {
		return deny(ReasonNotFound), nil
	}

	return r.withPassword(Decision{
		Outcome:   GrantedRestricted,
		Reason:    ReasonDirectLink,
		Recipient: recipient,
		Fields:    fieldsFor(resource.Fields, recipient.ID),
	}, resource)
}

// DerivedAccessAuth returns the access auth that applies to recipient: its
// own override when set, otherwise the resource-wide setting. A nil
// recipient gets the resource-wide setting.
func DerivedAccessAuth(options signing.AuthOptions, recipient *signing.Recipient) signing.AccessAuth {
	if recipient != nil && recipient.AuthOptions.AccessAuth != signing.AccessAuthNone {
		return recipient.AuthOptions.AccessAuth
	}
	return options.GlobalAccessAuth
}

// withPassword decrypts the resource password into a granted decision.
func (r *Resolver) withPassword(decision Decision, resource *Resource) (Decision, error) {
	if resource.EncryptedPassword == nil {
		return decision, nil
	}
	if r.secrets == nil {
		return Decision{}, fmt.Errorf("%w: no secret opener for %s %d password", domain.ErrConfiguration, resource.Kind, resource.ID)
	}

	password, err := r.secrets.Open(*resource.EncryptedPassword)
	if err != nil {
		return Decision{}, fmt.Errorf("open %s %d password: %w", resource.Kind, resource.ID, err)
	}
	decision.Password = &password
	return decision, nil
}

// teamMatches enforces that team-owned resources are only reachable from
// inside the owning team, and personal resources only outside any team.
func teamMatches(resource *Resource, team *TeamContext) bool {
	if resource.TeamID == nil {
		return team == nil
	}
	return team != nil && team.TeamID == *resource.TeamID
}

func isRecipient(recipients []signing.Recipient, requester Requester) bool {
	if requester.Email == "" {
		return false
	}
	for i := range recipients {
		if recipients[i].Email == requester.Email {
			return true
		}
	}
	return false
}

func findRecipient(recipients []signing.Recipient, id int64) *signing.Recipient {
	for i := range recipients {
		if recipients[i].ID == id {
			recipient := recipients[i]
			return &recipient
		}
	}
	return nil
}

func fieldsFor(fields []signing.Field, recipientID int64) []signing.Field {
	scoped := make([]signing.Field, 0, len(fields))
	for _, field := range fields {
		if field.RecipientID == recipientID {
			scoped = append(scoped, field)
		}
	}
	return scoped
}
