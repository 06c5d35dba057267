package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/shared/constant"
	"kmc/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const (
	otelScopeName = "jwt"
	bearerPrefix  = "Bearer "
)

// Claims carries the admin identity. UserID is the admin email, the kmc_adms key.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name,omitempty"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenID      string `json:"-"`
}

// Subject identifies who a token pair is issued for.
type Subject struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, subject Subject) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type Service struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) JWT {
	return &Service{
		config: cfg,
		otel:   otel,
	}
}

// key returns the HMAC secret and lifetime of a token type.
func (s *Service) key(tokenType TokenType) ([]byte, time.Duration, error) {
	switch tokenType {
	case AccessToken:
		return []byte(s.config.JWT.AccessSecret), time.Duration(s.config.JWT.AccessExpireMin) * time.Minute, nil
	case RefreshToken:
		return []byte(s.config.JWT.RefreshSecret), time.Duration(s.config.JWT.RefreshExpireMin) * time.Minute, nil
	default:
		return nil, 0, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

// GenerateTokenPair signs an access and a refresh token sharing one token id,
// so the session store can revoke the pair together.
func (s *Service) GenerateTokenPair(ctx context.Context, subject Subject) (_ *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".GenerateTokenPair")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()
	pair := &TokenPair{
		TokenType: strings.TrimSpace(bearerPrefix),
		ExpiresIn: int64(s.config.JWT.AccessExpireMin * constant.MinutesToSeconds),
		TokenID:   uuid.New().String(),
	}

	if pair.AccessToken, err = s.sign(subject, pair.TokenID, AccessToken, now); err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if pair.RefreshToken, err = s.sign(subject, pair.TokenID, RefreshToken, now); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return pair, nil
}

func (s *Service) sign(subject Subject, tokenID string, tokenType TokenType, issuedAt time.Time) (string, error) {
	secret, lifetime, err := s.key(tokenType)
	if err != nil {
		return "", err
	}

	claims := Claims{
		UserID:  subject.UserID,
		Email:   subject.Email,
		Name:    subject.Name,
		Role:    subject.Role,
		TokenID: tokenID,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   subject.UserID,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses a token signed with the secret of tokenType and checks its type claim.
func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".ValidateToken")
	defer scope.End()

	secret, _, err := s.key(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// RefreshTokens trades a valid refresh token for a new pair with a new token id.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, Subject{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	})
}

func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return token, nil
}
