package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vajra-labs/vajra-auth/internal/config"
	"github.com/vajra-labs/vajra-auth/internal/platform/logger"
)

// hmacSessionService is an implementation of SessionService using HMAC-SHA signing.
type hmacSessionService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// sessionClaims defines the JWT claim structure carried by session tokens.
type sessionClaims struct {
	AccountID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// Ensure hmacSessionService implements SessionService interface
var _ SessionService = (*hmacSessionService)(nil)

// NewSessionService creates a new session token service using HMAC-SHA256
// signing. The signing key is process-wide and read-only after startup;
// changing it invalidates every outstanding session.
func NewSessionService(cfg config.AuthConfig) (SessionService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacSessionService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
	}, nil
}

// GenerateToken creates a signed session token bound to the account ID.
func (s *hmacSessionService) GenerateToken(
	ctx context.Context,
	accountID uuid.UUID,
) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := sessionClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"account_id", accountID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign session token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a session token and returns the claims if valid.
// A token is rejected the instant the current time reaches its expiry; no
// leeway is applied.
func (s *hmacSessionService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time {
			return now // Use the injected time function for validation
		}),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("session token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("session token validation failed: malformed token", "error", err)
			return nil, ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("session token validation failed: invalid signature", "error", err)
			return nil, ErrInvalidToken
		default:
			log.Debug("session token validation failed: other validation error",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		log.Debug("session token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	log.Debug("session token validated successfully",
		"account_id", claims.AccountID,
		"token_id", claims.ID,
		"expiry", claims.ExpiresAt.Time)

	return &Claims{
		AccountID: claims.AccountID,
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}
