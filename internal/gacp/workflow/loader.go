package workflow

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed policies/*.json
var policiesFS embed.FS

// Loader loads workflow configuration from embedded JSON files
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadTransitions loads the survey status transition table
func (l *Loader) LoadTransitions() (*TransitionTable, error) {
	data, err := policiesFS.ReadFile("policies/transitions.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read transitions.json: %w", err)
	}

	var table TransitionTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse transitions.json: %w", err)
	}

	return &table, nil
}

// LoadRolePermissions loads the role to permission mapping
func (l *Loader) LoadRolePermissions() (RolePermissions, error) {
	data, err := policiesFS.ReadFile("policies/roles.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read roles.json: %w", err)
	}

	var perms RolePermissions
	if err := json.Unmarshal(data, &perms); err != nil {
		return nil, fmt.Errorf("failed to parse roles.json: %w", err)
	}

	return perms, nil
}

// LoadRouteConfigs loads the route permission bindings keyed "METHOD:PATH"
func (l *Loader) LoadRouteConfigs() (map[string]*RouteConfig, error) {
	data, err := policiesFS.ReadFile("policies/routes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read routes.json: %w", err)
	}

	var routes []*RouteConfig
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("failed to parse routes.json: %w", err)
	}

	configs := make(map[string]*RouteConfig, len(routes))
	for _, rc := range routes {
		configs[rc.Key()] = rc
	}
	return configs, nil
}
