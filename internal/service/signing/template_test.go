package signing

import (
	"context"
	"errors"
	"testing"

	"signet/internal/domain"
	signingSvc "signet/internal/domain/services/signing"
)

func TestTemplateService_GetTemplatePage(t *testing.T) {
	svc := newTestServices(false)

	t.Run("manager sees manager-and-above template", func(t *testing.T) {
		page, err := svc.templates.GetTemplatePage(context.Background(), sessionFor(managerUser, "manager@acme.test"), &signingSvc.ResourceRequest{
			TeamURL: "acme",
			ID:      "200",
		})
		if err != nil {
			t.Fatalf("GetTemplatePage() error = %v", err)
		}
		if page.TemplatesPath != "/t/acme/templates" || page.DocumentsPath != "/t/acme/documents" {
			t.Errorf("paths = %s, %s", page.TemplatesPath, page.DocumentsPath)
		}
		if page.DirectLinkURL != "https://sign.example.com/d/tok_team_enabled" {
			t.Errorf("DirectLinkURL = %s", page.DirectLinkURL)
		}
		if len(page.Recipients) != 2 || len(page.Fields) != 3 {
			t.Errorf("got %d recipients and %d fields, want 2 and 3", len(page.Recipients), len(page.Fields))
		}
		if page.Template.Meta == nil || page.Template.Meta.Password == nil || *page.Template.Meta.Password != "nda-secret" {
			t.Errorf("Meta.Password not decrypted: %v", page.Template.Meta)
		}
	})

	t.Run("member is redirected to templates", func(t *testing.T) {
		_, err := svc.templates.GetTemplatePage(context.Background(), sessionFor(memberUser, "member@acme.test"), &signingSvc.ResourceRequest{
			TeamURL: "acme",
			ID:      "200",
		})
		var redirect *domain.RedirectError
		if !errors.As(err, &redirect) {
			t.Fatalf("error = %v, want *domain.RedirectError", err)
		}
		if redirect.Location != "/t/acme/templates" {
			t.Errorf("Location = %s, want /t/acme/templates", redirect.Location)
		}
	})

	t.Run("disabled link has no share url", func(t *testing.T) {
		page, err := svc.templates.GetTemplatePage(context.Background(), sessionFor(memberUser, "member@acme.test"), &signingSvc.ResourceRequest{
			TeamURL: "acme",
			ID:      "202",
		})
		if err != nil {
			t.Fatalf("GetTemplatePage() error = %v", err)
		}
		if page.DirectLinkURL != "" {
			t.Errorf("DirectLinkURL = %s, want empty", page.DirectLinkURL)
		}
	})

	t.Run("personal template outside its owner", func(t *testing.T) {
		_, err := svc.templates.GetTemplatePage(context.Background(), sessionFor(adminUser, "admin@acme.test"), &signingSvc.ResourceRequest{
			ID: "201",
		})
		var redirect *domain.RedirectError
		if !errors.As(err, &redirect) || redirect.Location != "/templates" {
			t.Errorf("error = %v, want redirect to /templates", err)
		}
	})
}
