package signing

import "time"

// Visibility restricts which team roles may view a team-owned resource.
type Visibility string

const (
	VisibilityEveryone        Visibility = "EVERYONE"
	VisibilityManagerAndAbove Visibility = "MANAGER_AND_ABOVE"
	VisibilityAdmin           Visibility = "ADMIN"
)

// Visibilities lists all visibility levels, least restrictive first.
var Visibilities = []Visibility{
	VisibilityEveryone,
	VisibilityManagerAndAbove,
	VisibilityAdmin,
}

// AccessAuth is the authentication a recipient must satisfy before viewing.
type AccessAuth string

const (
	AccessAuthNone    AccessAuth = ""
	AccessAuthAccount AccessAuth = "ACCOUNT"
)

// ActionAuth is the authentication required before signing a field.
type ActionAuth string

const (
	ActionAuthNone      ActionAuth = ""
	ActionAuthAccount   ActionAuth = "ACCOUNT"
	ActionAuthPasskey   ActionAuth = "PASSKEY"
	ActionAuthTwoFactor ActionAuth = "TWO_FACTOR_AUTH"
)

// AuthOptions is the document or template level auth configuration.
type AuthOptions struct {
	GlobalAccessAuth AccessAuth `json:"globalAccessAuth,omitempty"`
	GlobalActionAuth ActionAuth `json:"globalActionAuth,omitempty"`
}

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"
	DocumentStatusPending   DocumentStatus = "PENDING"
	DocumentStatusCompleted DocumentStatus = "COMPLETED"
	DocumentStatusRejected  DocumentStatus = "REJECTED"
)

// DocumentMeta holds signing settings. Password is stored encrypted and is
// only replaced by plaintext after an access decision grants the requester.
type DocumentMeta struct {
	Subject     string  `json:"subject,omitempty"`
	Message     string  `json:"message,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	DateFormat  string  `json:"dateFormat,omitempty"`
	RedirectURL string  `json:"redirectUrl,omitempty"`
	Password    *string `json:"password,omitempty"`
}

type Document struct {
	ID             int64          `json:"id" db:"id"`
	UserID         int64          `json:"user_id" db:"user_id"`
	TeamID         *int64         `json:"team_id,omitempty" db:"team_id"` // NULL = personal
	Title          string         `json:"title" db:"title"`
	Status         DocumentStatus `json:"status" db:"status"`
	Visibility     Visibility     `json:"visibility" db:"visibility"`
	DocumentDataID *string        `json:"document_data_id,omitempty" db:"document_data_id"`
	AuthOptions    AuthOptions    `json:"auth_options" db:"auth_options"`
	Meta           *DocumentMeta  `json:"meta,omitempty" db:"meta"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time     `json:"deleted_at,omitempty" db:"deleted_at"`
}
