package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the admin roles allowed on one route pattern. An empty list admits any
// signed-in admin.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// FindPermissions matches chi route patterns; "/v1/rooms" and "/v1/rooms/" are the same route.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	permission, _ := r.Lookup(path, method)

	return permission
}

// Lookup is FindPermissions that also reports whether the route is listed at all.
func (r *PermissionData) Lookup(path, method string) (Permission, bool) {
	if r.index == nil {
		r.buildIndex()
	}

	permission, ok := r.index[routeKey(method, path)]

	return permission, ok
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, exists := r.index[key]; exists {
			log.Warn().Str("method", endpoint.Method).Str("path", endpoint.Path).Msg("Duplicate permission entry ignored")

			continue
		}

		r.index[key] = endpoint
	}
}

func routeKey(method, path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
