package signing

import (
	"context"
	"errors"
	"testing"

	"signet/internal/domain"
	"signet/internal/domain/models"
)

func TestDirectLinkService_GetDirectTemplate(t *testing.T) {
	signedIn := sessionFor(outsiderUser, "out@example.com")

	tests := []struct {
		name          string
		billing       bool
		session       *models.Session
		token         string
		wantErr       error
		wantRecipient int64
		wantFieldIDs  []int64
		wantHide      bool
	}{
		{name: "unknown token", token: "tok_unknown1", wantErr: domain.ErrNotFound},
		{name: "token too short", token: "tok", wantErr: domain.ErrNotFound},
		{name: "token with illegal characters", token: "tok/../../etc", wantErr: domain.ErrNotFound},
		{name: "disabled link", session: signedIn, token: "tok_disabled", wantErr: domain.ErrNotFound},
		{name: "account auth anonymous", token: "tok_team_enabled", wantErr: domain.ErrUnauthorized},
		{
			name:          "account auth signed in without membership",
			session:       signedIn,
			token:         "tok_team_enabled",
			wantRecipient: 600,
			wantFieldIDs:  []int64{2, 4},
			wantHide:      true,
		},
		{
			name:          "personal template anonymous",
			token:         "tok_personal",
			wantRecipient: 610,
			wantFieldIDs:  []int64{5},
		},
		{name: "personal template behind paywall", billing: true, token: "tok_personal", wantErr: domain.ErrForbidden},
		{name: "disabled personal template with billing", billing: true, token: "tok_personal_off", wantErr: domain.ErrNotFound},
		{
			name:          "team template with billing",
			billing:       true,
			session:       signedIn,
			token:         "tok_team_enabled",
			wantRecipient: 600,
			wantFieldIDs:  []int64{2, 4},
			wantHide:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices(tt.billing)

			page, err := svc.directLink.GetDirectTemplate(context.Background(), tt.session, tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetDirectTemplate() error = %v", err)
			}

			if page.Token != tt.token {
				t.Errorf("Token = %s, want %s", page.Token, tt.token)
			}
			if page.Recipient == nil || page.Recipient.ID != tt.wantRecipient {
				t.Fatalf("Recipient = %v, want %d", page.Recipient, tt.wantRecipient)
			}
			if len(page.Fields) != len(tt.wantFieldIDs) {
				t.Fatalf("Fields = %v, want ids %v", page.Fields, tt.wantFieldIDs)
			}
			for i, field := range page.Fields {
				if field.ID != tt.wantFieldIDs[i] {
					t.Errorf("Fields[%d].ID = %d, want %d", i, field.ID, tt.wantFieldIDs[i])
				}
			}
			if page.HidePoweredBy != tt.wantHide {
				t.Errorf("HidePoweredBy = %v, want %v", page.HidePoweredBy, tt.wantHide)
			}
		})
	}
}

func TestDirectLinkService_AuthenticationRequiredCarriesReturnPath(t *testing.T) {
	svc := newTestServices(false)

	_, err := svc.directLink.GetDirectTemplate(context.Background(), nil, "tok_team_enabled")

	var authErr *domain.AuthenticationRequiredError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *domain.AuthenticationRequiredError", err)
	}
	if authErr.ReturnTo != "/embed/direct/tok_team_enabled" {
		t.Errorf("ReturnTo = %s, want /embed/direct/tok_team_enabled", authErr.ReturnTo)
	}
	if authErr.Email != "" {
		t.Errorf("Email = %q, want empty for anonymous", authErr.Email)
	}
}

func TestDirectLinkService_DecryptsPassword(t *testing.T) {
	svc := newTestServices(false)

	page, err := svc.directLink.GetDirectTemplate(context.Background(), sessionFor(outsiderUser, "out@example.com"), "tok_team_enabled")
	if err != nil {
		t.Fatalf("GetDirectTemplate() error = %v", err)
	}
	if page.Template.Meta == nil || page.Template.Meta.Password == nil || *page.Template.Meta.Password != "nda-secret" {
		t.Errorf("Meta.Password not decrypted: %v", page.Template.Meta)
	}
}
