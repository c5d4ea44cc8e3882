package workflow

// Transition is one legal edge of the survey status machine.
type Transition struct {
	Operation  string   `json:"operation"`
	From       []string `json:"from"`
	To         string   `json:"to"`
	Permission string   `json:"permission"`
}

// TransitionTable is the embedded transition configuration.
type TransitionTable struct {
	Transitions []Transition `json:"transitions"`
}

// RolePermissions maps role names to the permissions they grant.
type RolePermissions map[string][]string

// RouteConfig binds an HTTP route to the permission it requires.
type RouteConfig struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Permission string `json:"permission"`
}

// Key returns the lookup key used by the permission middleware.
func (r *RouteConfig) Key() string {
	return r.Method + ":" + r.Path
}
