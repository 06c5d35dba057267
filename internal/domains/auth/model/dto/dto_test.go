package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kmc/infras/jwt"
	adminModel "kmc/internal/domains/admin/model"
	"kmc/internal/domains/auth/model/dto"
	"kmc/shared/constant"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestSignupRequest_ToAdminModel(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	req := dto.SignupRequest{Email: "new@kmc.org", Name: "신입"}

	admin := req.ToAdminModel("hashed", now)

	assert.Equal(t, "new@kmc.org", admin.Email)
	assert.Equal(t, "hashed", admin.Password)
	assert.Equal(t, "N", admin.AdmYn)
	assert.Equal(t, "0", admin.AdmGrade)
	assert.Equal(t, now, admin.CreatedAt)
}

func TestMeResponse_FromModel(t *testing.T) {
	tests := []struct {
		grade string
		role  string
	}{
		{grade: "0", role: constant.RoleStaff},
		{grade: "1", role: constant.RoleManager},
		{grade: "8", role: constant.RoleManager},
		{grade: "9", role: constant.RoleSuperAdmin},
		{grade: "", role: constant.RoleStaff},
		{grade: "12", role: constant.RoleStaff},
	}

	for _, tt := range tests {
		t.Run("grade "+tt.grade, func(t *testing.T) {
			var me dto.MeResponse
			me.FromModel(adminModel.Admin{Email: "a@kmc.org", AdmGrade: tt.grade})

			assert.Equal(t, tt.role, me.Role)
		})
	}
}
