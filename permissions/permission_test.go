package permissions_test

import (
	"kmc/permissions"
	"kmc/shared/constant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "refresh is public", path: "/v1/auth/refresh-token", method: http.MethodPost, wantSkip: true},
		{
			name:      "vacation decision needs a manager",
			path:      "/v1/vacations/{reqNo}/response",
			method:    http.MethodPut,
			wantRoles: []string{constant.RoleManager, constant.RoleSuperAdmin},
		},
		{
			name:      "room toggle is open to staff",
			path:      "/v1/rooms/{roomNo}/checks/{flag}/toggle",
			method:    http.MethodPost,
			wantRoles: []string{constant.RoleStaff, constant.RoleManager, constant.RoleSuperAdmin},
		},
		{name: "unknown route", path: "/v1/nowhere", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}

func TestFindPermissions_TrailingSlash(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	withSlash := data.FindPermissions("/v1/rooms/", http.MethodGet)
	withoutSlash := data.FindPermissions("/v1/rooms", http.MethodGet)

	assert.NotEmpty(t, withSlash.Permissions)
	assert.Equal(t, withSlash, withoutSlash)
}

func TestPermission_Allows(t *testing.T) {
	managers := permissions.Permission{Permissions: []string{constant.RoleManager, constant.RoleSuperAdmin}}

	assert.True(t, managers.Allows(constant.RoleManager))
	assert.False(t, managers.Allows(constant.RoleStaff))
	assert.True(t, permissions.Permission{}.Allows(constant.RoleStaff))
}

func TestFindPermissions_LiteralData(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{{Path: "/v1/meals/", Method: "get", Permissions: []string{constant.RoleStaff}}},
	}

	assert.Equal(t, []string{constant.RoleStaff}, data.FindPermissions("/v1/meals", http.MethodGet).Permissions)
}

func TestLookup_UnknownRoute(t *testing.T) {
	_, listed := permissions.Get().Lookup("/v1/unlisted", http.MethodGet)
	assert.False(t, listed)

	_, listed = permissions.Get().Lookup("/v1/rooms/{roomNo}", http.MethodDelete)
	assert.False(t, listed)

	permission, listed := permissions.Get().Lookup("/v1/rooms/{roomNo}", http.MethodGet)
	assert.True(t, listed)
	assert.NotEmpty(t, permission.Permissions)
}
