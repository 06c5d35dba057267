package service

import (
	"context"
	"fmt"
	"kmc/config"
	"kmc/infras/jwt"
	"kmc/infras/otel"
	adminModel "kmc/internal/domains/admin/model"
	adminRepo "kmc/internal/domains/admin/repository"
	"kmc/internal/domains/auth/model/dto"
	"kmc/shared"
	"kmc/shared/constant"
	"kmc/shared/event"
	"kmc/shared/failure"
	"kmc/shared/password"
	"kmc/shared/session"
	"kmc/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "이메일 또는 비밀번호가 올바르지 않습니다."
	msgEmailTaken         = "이미 가입된 이메일입니다."
	msgWrongPassword      = "현재 비밀번호가 올바르지 않습니다."
	msgSessionReplaced    = "다른 기기에서 로그인되어 세션이 종료되었습니다."
	msgInvalidRefresh     = "invalid refresh token"
	msgAdminNotFound      = "admin not found"
	MsgSignedUp           = "회원가입이 완료되었습니다. 관리자 승인 후 로그인이 가능합니다."
)

type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Me(ctx context.Context) (dto.MeResponse, error)
}

type serviceImpl struct {
	adminRepo  adminRepo.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	sessions   session.Store
	publisher  event.Publisher
}

func New(adminRepo adminRepo.Admin, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, sessions session.Store, publisher event.Publisher) Auth {
	return &serviceImpl{
		adminRepo:  adminRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		sessions:   sessions,
		publisher:  publisher,
	}
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = password.CheckNew(req.Password, req.ConfirmPassword); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	exists, err := s.adminRepo.Exist(ctx, adminModel.ByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return failure.Conflict(msgEmailTaken) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.adminRepo.Insert(ctx, req.ToAdminModel(hashedPassword, timezone.Now())); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return failure.FromDB(fmt.Errorf("failed to create admin: %w", err), msgEmailTaken) // nolint:wrapcheck
	}

	return nil
}

// Login issues a token pair and makes it the only live session of the admin.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(&err)

	admin, err := s.adminRepo.Get(ctx, adminModel.ByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.Email == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.BadRequestFromString(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(msgInvalidCredentials) // nolint:wrapcheck
	}

	if !admin.Approved() {
		return res, failure.NotAdminError
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, jwt.Subject{
		UserID: admin.Email,
		Email:  admin.Email,
		Name:   admin.Name,
		Role:   admin.Role(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err = s.sessions.Activate(ctx, admin.Email, tokenPair.TokenID, s.sessionTTL()); err != nil {
		log.Error().Err(err).Str("email", admin.Email).Msg("failed to activate session")

		return res, fmt.Errorf("failed to activate session: %w", err)
	}

	userAgent, _ := ctx.Value(constant.ContextKeyUserAgent).(string)

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Session, admin.Email, event.NewEnvelope(
		event.TypeSessionStarted,
		admin.Email,
		event.SessionStarted{Email: admin.Email, TokenID: tokenPair.TokenID, UserAgent: userAgent},
	))

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(&err)

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("rejected refresh token")

		return res, failure.Unauthorized(msgInvalidRefresh) // nolint:wrapcheck
	}

	active, err := s.sessions.IsActive(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		log.Error().Err(err).Msg("failed to read session")

		return res, fmt.Errorf("failed to read session: %w", err)
	}

	if !active {
		return res, failure.Unauthorized(msgSessionReplaced) // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(msgInvalidRefresh) // nolint:wrapcheck
	}

	if err = s.sessions.Activate(ctx, claims.UserID, tokenPair.TokenID, s.sessionTTL()); err != nil {
		log.Error().Err(err).Msg("failed to rotate session")

		return res, fmt.Errorf("failed to rotate session: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.sessions.Revoke(ctx, shared.CurrentUser(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = password.CheckNew(req.NewPassword, req.ConfirmPassword); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	admin, err := s.current(ctx)
	if err != nil {
		return err
	}

	if err = password.Verify(req.CurrentPassword, admin.Password); err != nil {
		return failure.BadRequestFromString(msgWrongPassword) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword, UpdatedAt: timezone.Now()})

	if err = s.adminRepo.Update(ctx, updatedFields, adminModel.ByEmail(admin.Email)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(&err)

	admin, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) current(ctx context.Context) (adminModel.Admin, error) {
	admin, err := s.adminRepo.Get(ctx, adminModel.ByEmail(shared.CurrentUser(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return admin, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.Email == constant.Empty {
		return admin, failure.NotFound(msgAdminNotFound) // nolint:wrapcheck
	}

	return admin, nil
}

// sessionTTL keeps the session alive as long as the refresh token.
func (s *serviceImpl) sessionTTL() time.Duration {
	return time.Duration(s.cfg.JWT.RefreshExpireMin) * time.Minute
}
