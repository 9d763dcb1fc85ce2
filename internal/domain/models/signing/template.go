package signing

import "time"

type TemplateType string

const (
	TemplateTypePublic  TemplateType = "PUBLIC"
	TemplateTypePrivate TemplateType = "PRIVATE"
)

type Template struct {
	ID                     int64         `json:"id" db:"id"`
	UserID                 int64         `json:"user_id" db:"user_id"`
	TeamID                 *int64        `json:"team_id,omitempty" db:"team_id"`
	Title                  string        `json:"title" db:"title"`
	Type                   TemplateType  `json:"type" db:"type"`
	Visibility             Visibility    `json:"visibility" db:"visibility"`
	TemplateDocumentDataID *string       `json:"template_document_data_id,omitempty" db:"template_document_data_id"`
	AuthOptions            AuthOptions   `json:"auth_options" db:"auth_options"`
	Meta                   *DocumentMeta `json:"meta,omitempty" db:"meta"`
	DirectLink             *DirectLink   `json:"direct_link,omitempty"`
	CreatedAt              time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at" db:"updated_at"`
}

// DirectLink lets anyone holding Token fill the template as the
// designated recipient, without team membership.
type DirectLink struct {
	ID                        string    `json:"id" db:"id"`
	TemplateID                int64     `json:"template_id" db:"template_id"`
	Token                     string    `json:"token" db:"token"`
	Enabled                   bool      `json:"enabled" db:"enabled"`
	DirectTemplateRecipientID int64     `json:"direct_template_recipient_id" db:"direct_template_recipient_id"`
	CreatedAt                 time.Time `json:"created_at" db:"created_at"`
}
