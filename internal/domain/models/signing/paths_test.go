package signing

import "testing"

func TestRootPaths(t *testing.T) {
	tests := []struct {
		name          string
		teamURL       string
		wantDocuments string
		wantTemplates string
	}{
		{
			name:          "personal",
			teamURL:       "",
			wantDocuments: "/documents",
			wantTemplates: "/templates",
		},
		{
			name:          "team",
			teamURL:       "acme",
			wantDocuments: "/t/acme/documents",
			wantTemplates: "/t/acme/templates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocumentsPath(tt.teamURL); got != tt.wantDocuments {
				t.Errorf("DocumentsPath(%q) = %s, want %s", tt.teamURL, got, tt.wantDocuments)
			}
			if got := TemplatesPath(tt.teamURL); got != tt.wantTemplates {
				t.Errorf("TemplatesPath(%q) = %s, want %s", tt.teamURL, got, tt.wantTemplates)
			}
		})
	}
}

func TestTeamMemberRole_Rank(t *testing.T) {
	if !(TeamMemberRoleAdmin.Rank() > TeamMemberRoleManager.Rank() &&
		TeamMemberRoleManager.Rank() > TeamMemberRoleMember.Rank()) {
		t.Error("role ranks are not ordered ADMIN > MANAGER > MEMBER")
	}
	if TeamMemberRole("OWNER").Valid() {
		t.Error("unknown role reported as valid")
	}
}
