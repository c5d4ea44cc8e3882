package workflow

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

var (
	// ErrUnknownOperation means the operation name is not in the transition table.
	ErrUnknownOperation = errors.New("unknown workflow operation")
	// ErrInvalidTransition means the survey's current status does not allow the operation.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Engine is the survey workflow engine: it owns the status transition table
// and the role-permission mapping, both loaded from embedded JSON.
type Engine struct {
	transitions map[string]*Transition
	rolePerms   RolePermissions
	routes      map[string]*RouteConfig
	terminal    map[string]bool
}

// NewEngine loads the embedded workflow configuration.
func NewEngine() (*Engine, error) {
	loader := NewLoader()

	table, err := loader.LoadTransitions()
	if err != nil {
		return nil, fmt.Errorf("failed to load transition table: %w", err)
	}

	rolePerms, err := loader.LoadRolePermissions()
	if err != nil {
		return nil, fmt.Errorf("failed to load role permissions: %w", err)
	}

	routes, err := loader.LoadRouteConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to load route configs: %w", err)
	}

	transitions := make(map[string]*Transition, len(table.Transitions))
	reachable := make(map[string]bool)
	outgoing := make(map[string]bool)
	for i := range table.Transitions {
		t := &table.Transitions[i]
		if _, dup := transitions[t.Operation]; dup {
			return nil, fmt.Errorf("duplicate workflow operation: %s", t.Operation)
		}
		transitions[t.Operation] = t
		reachable[t.To] = true
		for _, from := range t.From {
			reachable[from] = true
			outgoing[from] = true
		}
	}

	// Terminal statuses are reachable but have no outgoing edges.
	terminal := make(map[string]bool)
	for status := range reachable {
		if !outgoing[status] {
			terminal[status] = true
		}
	}

	return &Engine{
		transitions: transitions,
		rolePerms:   rolePerms,
		routes:      routes,
		terminal:    terminal,
	}, nil
}

// Transition returns the table entry for an operation.
func (e *Engine) Transition(operation string) (*Transition, error) {
	t, ok := e.transitions[operation]
	if !ok {
		return nil, ErrUnknownOperation
	}
	return t, nil
}

// CheckTransition validates that the operation may be applied to a survey in
// fromStatus and returns the target status.
func (e *Engine) CheckTransition(operation, fromStatus string) (string, error) {
	t, err := e.Transition(operation)
	if err != nil {
		return "", err
	}
	for _, from := range t.From {
		if from == fromStatus {
			return t.To, nil
		}
	}
	return "", ErrInvalidTransition
}

// FromStatuses returns the statuses an operation may start from. The slice is
// a copy so callers can pass it straight into a repository filter.
func (e *Engine) FromStatuses(operation string) ([]string, error) {
	t, err := e.Transition(operation)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.From))
	copy(out, t.From)
	return out, nil
}

// IsTerminal reports whether a status has no outgoing transitions.
func (e *Engine) IsTerminal(status string) bool {
	return e.terminal[status]
}

// RoleHasPermission reports whether the role grants the permission.
func (e *Engine) RoleHasPermission(role, permission string) bool {
	for _, p := range e.rolePerms[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// RolesWithPermission returns the sorted role names granting the permission.
func (e *Engine) RolesWithPermission(permission string) []string {
	var roles []string
	for role, perms := range e.rolePerms {
		for _, p := range perms {
			if p == permission {
				roles = append(roles, role)
				break
			}
		}
	}
	sort.Strings(roles)
	return roles
}

// RouteConfigs returns the route permission bindings keyed "METHOD:PATH".
func (e *Engine) RouteConfigs() map[string]*RouteConfig {
	return e.routes
}

// CanOperate combines the transition's permission requirement with the
// caller's role. Ownership checks stay in the service layer.
func (e *Engine) CanOperate(operation, role string) (bool, error) {
	t, err := e.Transition(operation)
	if err != nil {
		return false, err
	}
	if t.Permission == "" {
		return true, nil
	}
	return e.RoleHasPermission(role, t.Permission), nil
}

// statusSet is used by Validate below to keep the table honest at boot.
var knownStatuses = map[string]bool{
	model.StatusDraft:             true,
	model.StatusSubmitted:         true,
	model.StatusUnderReview:       true,
	model.StatusRevisionRequested: true,
	model.StatusApproved:          true,
	model.StatusRejected:          true,
}

// Validate checks the loaded table only references known statuses.
func (e *Engine) Validate() error {
	for op, t := range e.transitions {
		if !knownStatuses[t.To] {
			return fmt.Errorf("operation %s targets unknown status %s", op, t.To)
		}
		for _, from := range t.From {
			if !knownStatuses[from] {
				return fmt.Errorf("operation %s starts from unknown status %s", op, from)
			}
		}
	}
	return nil
}
