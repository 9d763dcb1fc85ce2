package signing

import (
	"time"

	"signet/internal/access"
	"signet/internal/domain/models"
	"signet/internal/domain/models/signing"
)

const (
	acmeID   int64 = 10
	globexID int64 = 11

	adminUser     int64 = 1
	managerUser   int64 = 2
	memberUser    int64 = 3
	recipientUser int64 = 4
	soloUser      int64 = 5
	friendUser    int64 = 6
	outsiderUser  int64 = 9

	adminDoc     int64 = 100
	everyoneDoc  int64 = 101
	personalDoc  int64 = 102
	noDataDoc    int64 = 103
	deletedDoc   int64 = 104
	teamTemplate int64 = 200
	soloTemplate int64 = 201
	offTemplate  int64 = 202
	soloOff      int64 = 203
)

func sessionFor(userID int64, email string) *models.Session {
	return &models.Session{UserID: userID, Email: email, EmailVerified: true}
}

// seededStore builds two teams, a handful of documents and templates with
// direct links.
func seededStore() *memoryStore {
	s := newMemoryStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.teams[acmeID] = &signing.Team{ID: acmeID, Name: "Acme", URL: "acme", OwnerUserID: adminUser, HidePoweredBy: true}
	s.teams[globexID] = &signing.Team{ID: globexID, Name: "Globex", URL: "globex", OwnerUserID: memberUser}
	s.members = []signing.TeamMember{
		{ID: 1, TeamID: acmeID, UserID: adminUser, Role: signing.TeamMemberRoleAdmin},
		{ID: 2, TeamID: acmeID, UserID: managerUser, Role: signing.TeamMemberRoleManager},
		{ID: 3, TeamID: acmeID, UserID: memberUser, Role: signing.TeamMemberRoleMember},
		{ID: 4, TeamID: acmeID, UserID: recipientUser, Role: signing.TeamMemberRoleMember},
		{ID: 5, TeamID: globexID, UserID: memberUser, Role: signing.TeamMemberRoleAdmin},
	}

	data := ptr("data_1")
	s.documents[adminDoc] = &signing.Document{
		ID: adminDoc, UserID: adminUser, TeamID: ptr(acmeID), Title: "Board minutes",
		Status: signing.DocumentStatusPending, Visibility: signing.VisibilityAdmin, DocumentDataID: data,
		Meta:      &signing.DocumentMeta{Subject: "Please sign", Password: ptr("sealed:doc-secret")},
		CreatedAt: now, UpdatedAt: now,
	}
	s.documents[everyoneDoc] = &signing.Document{
		ID: everyoneDoc, UserID: adminUser, TeamID: ptr(acmeID), Title: "Handbook",
		Status: signing.DocumentStatusCompleted, Visibility: signing.VisibilityEveryone, DocumentDataID: data,
		CreatedAt: now, UpdatedAt: now,
	}
	s.documents[personalDoc] = &signing.Document{
		ID: personalDoc, UserID: soloUser, Title: "Lease",
		Status: signing.DocumentStatusPending, Visibility: signing.VisibilityEveryone, DocumentDataID: data,
		CreatedAt: now, UpdatedAt: now,
	}
	s.documents[noDataDoc] = &signing.Document{
		ID: noDataDoc, UserID: adminUser, TeamID: ptr(acmeID), Title: "Draft",
		Status: signing.DocumentStatusDraft, Visibility: signing.VisibilityEveryone,
		CreatedAt: now, UpdatedAt: now,
	}
	s.documents[deletedDoc] = &signing.Document{
		ID: deletedDoc, UserID: adminUser, TeamID: ptr(acmeID), Title: "Old",
		Visibility: signing.VisibilityEveryone, DocumentDataID: data,
		CreatedAt: now, UpdatedAt: now, DeletedAt: &now,
	}

	s.templates[teamTemplate] = &signing.Template{
		ID: teamTemplate, UserID: adminUser, TeamID: ptr(acmeID), Title: "NDA",
		Type: signing.TemplateTypePrivate, Visibility: signing.VisibilityManagerAndAbove,
		TemplateDocumentDataID: data,
		AuthOptions:            signing.AuthOptions{GlobalAccessAuth: signing.AccessAuthAccount},
		Meta:                   &signing.DocumentMeta{Password: ptr("sealed:nda-secret")},
		DirectLink: &signing.DirectLink{
			ID: "3f2b1c4e-0d9a-4f8e-b6a1-7c5d2e9f0a11", TemplateID: teamTemplate,
			Token: "tok_team_enabled", Enabled: true, DirectTemplateRecipientID: 600,
		},
	}
	s.templates[soloTemplate] = &signing.Template{
		ID: soloTemplate, UserID: soloUser, Title: "Waiver",
		Type: signing.TemplateTypePublic, Visibility: signing.VisibilityEveryone,
		TemplateDocumentDataID: data,
		DirectLink: &signing.DirectLink{
			ID: "8a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c2d", TemplateID: soloTemplate,
			Token: "tok_personal", Enabled: true, DirectTemplateRecipientID: 610,
		},
	}
	s.templates[offTemplate] = &signing.Template{
		ID: offTemplate, UserID: adminUser, TeamID: ptr(acmeID), Title: "Retired",
		Visibility: signing.VisibilityEveryone, TemplateDocumentDataID: data,
		DirectLink: &signing.DirectLink{
			ID: "0e1d2c3b-4a59-4687-8776-655443322110", TemplateID: offTemplate,
			Token: "tok_disabled", Enabled: false, DirectTemplateRecipientID: 620,
		},
	}
	s.templates[soloOff] = &signing.Template{
		ID: soloOff, UserID: soloUser, Title: "Paused",
		Visibility: signing.VisibilityEveryone, TemplateDocumentDataID: data,
		DirectLink: &signing.DirectLink{
			ID: "5c4b3a29-1807-4f6e-8d5c-4b3a29180706", TemplateID: soloOff,
			Token: "tok_personal_off", Enabled: false, DirectTemplateRecipientID: 630,
		},
	}

	s.recipients = []signing.Recipient{
		{ID: 500, DocumentID: ptr(adminDoc), Email: "signer@example.com", Role: signing.RecipientRoleSigner},
		{ID: 501, DocumentID: ptr(personalDoc), Email: "friend@example.com", Role: signing.RecipientRoleSigner},
		{ID: 600, TemplateID: ptr(teamTemplate), Email: "direct.link@template.local", Role: signing.RecipientRoleSigner},
		{ID: 601, TemplateID: ptr(teamTemplate), Email: "counsel@acme.test", Role: signing.RecipientRoleApprover},
		{ID: 610, TemplateID: ptr(soloTemplate), Email: "direct.link@template.local", Role: signing.RecipientRoleSigner},
		{ID: 620, TemplateID: ptr(offTemplate), Email: "direct.link@template.local", Role: signing.RecipientRoleSigner},
		{ID: 630, TemplateID: ptr(soloOff), Email: "direct.link@template.local", Role: signing.RecipientRoleSigner},
	}
	s.fields = []signing.Field{
		{ID: 1, DocumentID: ptr(adminDoc), RecipientID: 500, Type: signing.FieldTypeSignature, Page: 1},
		{ID: 2, TemplateID: ptr(teamTemplate), RecipientID: 600, Type: signing.FieldTypeSignature, Page: 1},
		{ID: 3, TemplateID: ptr(teamTemplate), RecipientID: 601, Type: signing.FieldTypeSignature, Page: 2},
		{ID: 4, TemplateID: ptr(teamTemplate), RecipientID: 600, Type: signing.FieldTypeDate, Page: 1},
		{ID: 5, TemplateID: ptr(soloTemplate), RecipientID: 610, Type: signing.FieldTypeName, Page: 1},
	}

	return s
}

type testServices struct {
	store      *memoryStore
	documents  *documentService
	templates  *templateService
	directLink *directLinkService
	teams      *teamService
}

func newTestServices(billingEnabled bool) *testServices {
	store := seededStore()
	resolver := access.NewResolver(prefixOpener{})
	logger := discardLogger()

	actions, err := access.NewTeamActionRegistry()
	if err != nil {
		panic(err)
	}

	return &testServices{
		store: store,
		documents: NewDocumentService(
			fakeDocumentRepo{store}, fakeRecipientRepo{store}, fakeFieldRepo{store}, fakeTeamRepo{store}, resolver, logger,
		).(*documentService),
		templates: NewTemplateService(
			fakeTemplateRepo{store}, fakeRecipientRepo{store}, fakeFieldRepo{store}, fakeTeamRepo{store}, resolver, "https://sign.example.com/", logger,
		).(*templateService),
		directLink: NewDirectLinkService(
			fakeTemplateRepo{store}, fakeRecipientRepo{store}, fakeFieldRepo{store}, fakeTeamRepo{store}, resolver, billingEnabled, logger,
		).(*directLinkService),
		teams: NewTeamService(fakeTeamRepo{store}, actions, logger).(*teamService),
	}
}
