package signing

import "time"

type RecipientRole string

const (
	RecipientRoleSigner   RecipientRole = "SIGNER"
	RecipientRoleViewer   RecipientRole = "VIEWER"
	RecipientRoleApprover RecipientRole = "APPROVER"
	RecipientRoleCC       RecipientRole = "CC"
)

type SigningStatus string

const (
	SigningStatusNotSigned SigningStatus = "NOT_SIGNED"
	SigningStatusSigned    SigningStatus = "SIGNED"
	SigningStatusRejected  SigningStatus = "REJECTED"
)

// RecipientAuthOptions overrides the document-level auth for one recipient.
type RecipientAuthOptions struct {
	AccessAuth AccessAuth `json:"accessAuth,omitempty"`
	ActionAuth ActionAuth `json:"actionAuth,omitempty"`
}

// Recipient belongs to exactly one of a document or a template.
type Recipient struct {
	ID            int64                `json:"id" db:"id"`
	DocumentID    *int64               `json:"document_id,omitempty" db:"document_id"`
	TemplateID    *int64               `json:"template_id,omitempty" db:"template_id"`
	Email         string               `json:"email" db:"email"`
	Name          string               `json:"name" db:"name"`
	Role          RecipientRole        `json:"role" db:"role"`
	SigningStatus SigningStatus        `json:"signing_status" db:"signing_status"`
	AuthOptions   RecipientAuthOptions `json:"auth_options" db:"auth_options"`
	SignedAt      *time.Time           `json:"signed_at,omitempty" db:"signed_at"`
}

type FieldType string

const (
	FieldTypeSignature FieldType = "SIGNATURE"
	FieldTypeInitials  FieldType = "INITIALS"
	FieldTypeName      FieldType = "NAME"
	FieldTypeEmail     FieldType = "EMAIL"
	FieldTypeDate      FieldType = "DATE"
	FieldTypeText      FieldType = "TEXT"
	FieldTypeCheckbox  FieldType = "CHECKBOX"
)

// Field is a placement on a page assigned to one recipient.
type Field struct {
	ID          int64     `json:"id" db:"id"`
	DocumentID  *int64    `json:"document_id,omitempty" db:"document_id"`
	TemplateID  *int64    `json:"template_id,omitempty" db:"template_id"`
	RecipientID int64     `json:"recipient_id" db:"recipient_id"`
	Type        FieldType `json:"type" db:"type"`
	Page        int       `json:"page" db:"page"`
	PositionX   float64   `json:"position_x" db:"position_x"`
	PositionY   float64   `json:"position_y" db:"position_y"`
	Width       float64   `json:"width" db:"width"`
	Height      float64   `json:"height" db:"height"`
	CustomText  string    `json:"custom_text" db:"custom_text"`
	Inserted    bool      `json:"inserted" db:"inserted"`
}
