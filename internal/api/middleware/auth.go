package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/cache"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
	CALLER_KEY       contextKey = "caller"
)

// TokenVerifier validates a bearer token and returns its claims
//
//go:generate mockgen -source=auth.go -destination=../../mocks/token_verifier.go -package=mocks -mock_names=TokenVerifier=MockTokenVerifier
type TokenVerifier interface {
	Verify(tokenString string) (*jwt.RegisteredClaims, error)
}

type jwtVerifier struct {
	publicKey *rsa.PublicKey
	secret    []byte
}

// NewTokenVerifier creates a verifier for RS256 tokens when a public key is given,
// otherwise for HS256 tokens signed with the shared secret
func NewTokenVerifier(publicKeyPEM string, secret string) (TokenVerifier, error) {
	if publicKeyPEM != "" {
		publicKey, err := parseRSAPublicKey(publicKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		return &jwtVerifier{publicKey: publicKey}, nil
	}
	if secret != "" {
		return &jwtVerifier{secret: []byte(secret)}, nil
	}
	return nil, errors.New("either a JWT public key or a JWT secret must be configured")
}

// Verify validates the token signature, the standard time claims and the user id subject
func (v *jwtVerifier) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	methods := []string{jwt.SigningMethodHS256.Alg()}
	if v.publicKey != nil {
		methods = []string{jwt.SigningMethodRS256.Alg()}
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if v.publicKey != nil {
			return v.publicKey, nil
		}
		return v.secret, nil
	}, jwt.WithValidMethods(methods), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errors.New("token subject is not a user id")
	}

	return claims, nil
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success bool
	Claims  *jwt.RegisteredClaims
	Error   error
}

// Authenticate validates the Authorization header
func Authenticate(authHeader string, verifier TokenVerifier) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	if !strings.EqualFold(parts[0], "bearer") {
		result.Error = fmt.Errorf("unsupported authorization type: %s", parts[0])
		return result
	}

	claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.Claims = claims
	return result
}

// Auth returns a gin middleware that authenticates the bearer token and
// resolves the caller from the users table
func Auth(verifier TokenVerifier, users cache.UserCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		result := Authenticate(c.GetHeader("Authorization"), verifier)

		if !result.Success {
			logger.WarnCtx(ctx, "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			Abort(c, apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error()))
			return
		}

		user, err := users.Get(ctx, result.Claims.Subject)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve caller: %w", err))
			Abort(c, apierrors.NewInternalError("Failed to resolve user"))
			return
		}
		if user == nil {
			logger.WarnCtx(ctx, "Authenticated subject has no user",
				zap.String("subject", result.Claims.Subject),
				zap.String("path", c.Request.URL.Path),
			)
			Abort(c, apierrors.NewUnauthorizedError("User not found"))
			return
		}

		caller := domain.Caller{ID: user.ID, Name: user.Name, Role: user.Role}
		c.Set(JWT_CLAIMS_KEY, result.Claims)
		c.Set(AUTH_SUBJECT_KEY, result.Claims.Subject)
		c.Set(CALLER_KEY, caller)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, caller.ID))

		logger.DebugCtx(ctx, "JWT authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("subject", caller.ID),
			zap.String("role", string(caller.Role)),
		)

		c.Next()
	}
}

// CallerFromContext returns the caller resolved by Auth
func CallerFromContext(c *gin.Context) (domain.Caller, bool) {
	value, ok := c.Get(CALLER_KEY)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := value.(domain.Caller)
	return caller, ok
}

// RequireRole rejects callers without the given role, it must run after Auth
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			Abort(c, apierrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if caller.Role != role {
			logger.WarnCtx(c.Request.Context(), "Caller lacks required role",
				zap.String("caller", caller.ID),
				zap.String("required", string(role)),
			)
			Abort(c, apierrors.NewForbiddenError("Access denied"))
			return
		}
		c.Next()
	}
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
