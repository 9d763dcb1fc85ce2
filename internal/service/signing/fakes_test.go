package signing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"signet/internal/domain"
	"signet/internal/domain/models/signing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore backs all fake repositories with plain maps.
type memoryStore struct {
	mu         sync.Mutex
	documents  map[int64]*signing.Document
	templates  map[int64]*signing.Template
	teams      map[int64]*signing.Team
	members    []signing.TeamMember
	recipients []signing.Recipient
	fields     []signing.Field
	failLists  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		documents: map[int64]*signing.Document{},
		templates: map[int64]*signing.Template{},
		teams:     map[int64]*signing.Team{},
	}
}

type fakeDocumentRepo struct{ s *memoryStore }

func (r fakeDocumentRepo) GetByID(_ context.Context, id int64) (*signing.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, ok := r.s.documents[id]
	if !ok || doc.DeletedAt != nil {
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	out := *doc
	return &out, nil
}

func (r fakeDocumentRepo) Create(_ context.Context, doc *signing.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.documents[doc.ID] = doc
	return nil
}

type fakeTemplateRepo struct{ s *memoryStore }

func (r fakeTemplateRepo) GetByID(_ context.Context, id int64) (*signing.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tmpl, ok := r.s.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	out := *tmpl
	return &out, nil
}

func (r fakeTemplateRepo) GetByDirectLinkToken(_ context.Context, token string) (*signing.Template, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, tmpl := range r.s.templates {
		if tmpl.DirectLink != nil && tmpl.DirectLink.Token == token {
			out := *tmpl
			return &out, nil
		}
	}
	return nil, fmt.Errorf("direct link: %w", domain.ErrNotFound)
}

func (r fakeTemplateRepo) Create(_ context.Context, tmpl *signing.Template) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.templates[tmpl.ID] = tmpl
	return nil
}

func (r fakeTemplateRepo) CreateDirectLink(_ context.Context, link *signing.DirectLink) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tmpl, ok := r.s.templates[link.TemplateID]
	if !ok {
		return fmt.Errorf("template %d: %w", link.TemplateID, domain.ErrNotFound)
	}
	tmpl.DirectLink = link
	return nil
}

type fakeTeamRepo struct{ s *memoryStore }

func (r fakeTeamRepo) GetByURL(_ context.Context, url string, userID int64) (*signing.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, team := range r.s.teams {
		if team.URL != url {
			continue
		}
		for _, member := range r.s.members {
			if member.TeamID == team.ID && member.UserID == userID {
				out := *team
				m := member
				out.CurrentMember = &m
				return &out, nil
			}
		}
	}
	return nil, fmt.Errorf("team %q: %w", url, domain.ErrNotFound)
}

func (r fakeTeamRepo) GetByID(_ context.Context, id int64) (*signing.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	team, ok := r.s.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
	}
	out := *team
	return &out, nil
}

func (r fakeTeamRepo) Create(_ context.Context, team *signing.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.teams[team.ID] = team
	return nil
}

func (r fakeTeamRepo) AddMember(_ context.Context, member *signing.TeamMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.members = append(r.s.members, *member)
	return nil
}

type fakeRecipientRepo struct{ s *memoryStore }

func (r fakeRecipientRepo) ListByDocument(_ context.Context, documentID int64) ([]signing.Recipient, error) {
	return r.list(func(rc signing.Recipient) bool { return rc.DocumentID != nil && *rc.DocumentID == documentID })
}

func (r fakeRecipientRepo) ListByTemplate(_ context.Context, templateID int64) ([]signing.Recipient, error) {
	return r.list(func(rc signing.Recipient) bool { return rc.TemplateID != nil && *rc.TemplateID == templateID })
}

func (r fakeRecipientRepo) list(match func(signing.Recipient) bool) ([]signing.Recipient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failLists != nil {
		return nil, r.s.failLists
	}
	out := []signing.Recipient{}
	for _, rc := range r.s.recipients {
		if match(rc) {
			out = append(out, rc)
		}
	}
	return out, nil
}

func (r fakeRecipientRepo) Create(_ context.Context, recipient *signing.Recipient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.recipients = append(r.s.recipients, *recipient)
	return nil
}

type fakeFieldRepo struct{ s *memoryStore }

func (r fakeFieldRepo) ListByDocument(_ context.Context, documentID int64) ([]signing.Field, error) {
	return r.list(func(f signing.Field) bool { return f.DocumentID != nil && *f.DocumentID == documentID })
}

func (r fakeFieldRepo) ListByTemplate(_ context.Context, templateID int64) ([]signing.Field, error) {
	return r.list(func(f signing.Field) bool { return f.TemplateID != nil && *f.TemplateID == templateID })
}

func (r fakeFieldRepo) list(match func(signing.Field) bool) ([]signing.Field, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []signing.Field{}
	for _, f := range r.s.fields {
		if match(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r fakeFieldRepo) Create(_ context.Context, field *signing.Field) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.fields = append(r.s.fields, *field)
	return nil
}

// prefixOpener decrypts by stripping "sealed:".
type prefixOpener struct{}

func (prefixOpener) Open(ciphertext string) (string, error) {
	if len(ciphertext) < 7 || ciphertext[:7] != "sealed:" {
		return "", errors.New("not sealed")
	}
	return ciphertext[7:], nil
}

func ptr[T any](v T) *T { return &v }
