package access

import "signet/internal/domain/models/signing"

// Outcome is the kind of access decision.
type Outcome int

const (
	// Denied means the resource must be reported as not found.
	Denied Outcome = iota

	// AuthenticationRequired means the requester must sign in and retry.
	AuthenticationRequired

	// GrantedFull gives the requester the complete resource.
	GrantedFull

	// GrantedRestricted gives the requester a view scoped to one recipient.
	GrantedRestricted
)

func (o Outcome) String() string {
	switch o {
	case Denied:
		return "denied"
	case AuthenticationRequired:
		return "authentication_required"
	case GrantedFull:
		return "granted_full"
	case GrantedRestricted:
		return "granted_restricted"
	default:
		return "unknown"
	}
}

// MarshalText lets decisions render as strings in JSON and logs.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Reason records which rule produced a decision. Reasons are for audit
// logs only; responses never expose them.
type Reason int

const (
	ReasonNotFound Reason = iota
	ReasonTeamMismatch
	ReasonNotParticipant
	ReasonRoleInsufficient
	ReasonAccountRequired
	ReasonOwner
	ReasonRecipient
	ReasonVisibility
	ReasonDirectLink
)

func (r Reason) String() string {
	switch r {
	case ReasonNotFound:
		return "not_found"
	case ReasonTeamMismatch:
		return "team_mismatch"
	case ReasonNotParticipant:
		return "not_participant"
	case ReasonRoleInsufficient:
		return "role_insufficient"
	case ReasonAccountRequired:
		return "account_required"
	case ReasonOwner:
		return "owner"
	case ReasonRecipient:
		return "recipient"
	case ReasonVisibility:
		return "visibility"
	case ReasonDirectLink:
		return "direct_link"
	default:
		return "unknown"
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Decision is the result of one access resolution.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	Reason  Reason  `json:"reason"`

	// RedirectTarget is where the client returns after authenticating.
	// Only set for AuthenticationRequired.
	RedirectTarget string `json:"redirect_target,omitempty"`

	// Recipient and Fields scope a GrantedRestricted decision.
	Recipient *signing.Recipient `json:"recipient,omitempty"`
	Fields    []signing.Field    `json:"fields,omitempty"`

	// Password is the decrypted resource password, set only on a grant
	// for a password-protected resource.
	Password *string `json:"-"`
}

// Granted reports whether the decision lets the requester see the resource.
func (d Decision) Granted() bool {
	return d.Outcome == GrantedFull || d.Outcome == GrantedRestricted
}

func deny(reason Reason) Decision {
	return Decision{Outcome: Denied, Reason: reason}
}
