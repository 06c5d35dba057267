package dto

import (
	"kmc/infras/jwt"
	adminModel "kmc/internal/domains/admin/model"
	"kmc/shared/status"
	"time"
)

type SignupRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Name            string `json:"name"             validate:"required,max=50"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// ToAdminModel creates an account that stays unapproved until a superadmin grants adm_yn.
func (r *SignupRequest) ToAdminModel(hashedPassword string, now time.Time) adminModel.Admin {
	return adminModel.Admin{
		Email:     r.Email,
		Name:      r.Name,
		Password:  hashedPassword,
		AdmYn:     status.No,
		AdmGrade:  adminModel.GradeNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresIn    int64      `json:"expires_in"`
	Admin        MeResponse `json:"admin"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type UpdatePasswordRequest struct {
	Password  string    `db:"password"`
	UpdatedAt time.Time `db:"updated_at"`
}

type MeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Grade string `json:"grade"`
}

func (m *MeResponse) FromModel(admin adminModel.Admin) {
	m.Email = admin.Email
	m.Name = admin.Name
	m.Role = admin.Role()
	m.Grade = admin.AdmGrade
}
