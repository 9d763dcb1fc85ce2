package access

import (
	"embed"
	"fmt"
	"slices"

	"signet/internal/domain/models/signing"

	"gopkg.in/yaml.v3"
)

//go:embed config/team_actions.yaml
var teamActionsFile embed.FS

// TeamAction names an operation on a team that only some roles may run.
type TeamAction string

const (
	ActionManageTeam                TeamAction = "MANAGE_TEAM"
	ActionManageBilling             TeamAction = "MANAGE_BILLING"
	ActionDeleteInvitations         TeamAction = "DELETE_INVITATIONS"
	ActionDeleteTeamTransferRequest TeamAction = "DELETE_TEAM_TRANSFER_REQUEST"
)

type teamActionDef struct {
	Name        TeamAction               `yaml:"name"`
	Description string                   `yaml:"description"`
	Roles       []signing.TeamMemberRole `yaml:"roles"`
}

type teamActionsConfig struct {
	Actions   []teamActionDef                                    `yaml:"actions"`
	Hierarchy map[signing.TeamMemberRole][]signing.TeamMemberRole `yaml:"hierarchy"`
}

// TeamActionRegistry answers team-action and role-hierarchy questions.
// It is read-only after construction and safe for concurrent use.
type TeamActionRegistry struct {
	actions   []teamActionDef
	hierarchy map[signing.TeamMemberRole][]signing.TeamMemberRole
}

// NewTeamActionRegistry loads the embedded team action table.
func NewTeamActionRegistry() (*TeamActionRegistry, error) {
	data, err := teamActionsFile.ReadFile("config/team_actions.yaml")
	if err != nil {
		return nil, fmt.Errorf("read team actions: %w", err)
	}
	return parseTeamActions(data)
}

func parseTeamActions(data []byte) (*TeamActionRegistry, error) {
	var cfg teamActionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal team actions: %w", err)
	}

	for _, action := range cfg.Actions {
		if action.Name == "" {
			return nil, fmt.Errorf("team action without name")
		}
		for _, role := range action.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("team action %s: unknown role %q", action.Name, role)
			}
		}
	}
	for role, managed := range cfg.Hierarchy {
		if !role.Valid() {
			return nil, fmt.Errorf("hierarchy: unknown role %q", role)
		}
		for _, target := range managed {
			if target.Rank() > role.Rank() {
				return nil, fmt.Errorf("hierarchy: %s cannot manage higher role %s", role, target)
			}
		}
	}

	return &TeamActionRegistry{
		actions:   cfg.Actions,
		hierarchy: cfg.Hierarchy,
	}, nil
}

// CanExecute reports whether role may run action. Unknown actions deny.
func (r *TeamActionRegistry) CanExecute(action TeamAction, role signing.TeamMemberRole) bool {
	for _, def := range r.actions {
		if def.Name == action {
			return slices.Contains(def.Roles, role)
		}
	}
	return false
}

// ActionsFor lists the actions role may run, in table order.
func (r *TeamActionRegistry) ActionsFor(role signing.TeamMemberRole) []TeamAction {
	actions := []TeamAction{}
	for _, def := range r.actions {
		if r.CanExecute(def.Name, role) {
			actions = append(actions, def.Name)
		}
	}
	return actions
}

// CanManageRole reports whether a member with role actor may assign or
// remove role target.
func (r *TeamActionRegistry) CanManageRole(actor, target signing.TeamMemberRole) bool {
	return slices.Contains(r.hierarchy[actor], target)
}

// ManageableRoles lists the roles actor may assign, highest first.
func (r *TeamActionRegistry) ManageableRoles(actor signing.TeamMemberRole) []signing.TeamMemberRole {
	roles := []signing.TeamMemberRole{}
	for _, role := range signing.TeamMemberRoles {
		if r.CanManageRole(actor, role) {
			roles = append(roles, role)
		}
	}
	return roles
}
