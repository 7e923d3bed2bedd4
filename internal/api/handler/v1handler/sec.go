package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"os"
	"strings"

	"directorybolt/internal/auth"
	"directorybolt/internal/config"
	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SecHandlerOptions configure token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key verifying worker tokens. It
	// is read from PublicKeyPath when empty.
	PublicKey     string
	PublicKeyPath string
	// Issuer is required on worker tokens when set.
	Issuer string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKeyPath: cfg.JWT.PublicKeyPath,
		Issuer:        cfg.JWT.Issuer,
	}
}

// SecHandler authenticates the three kinds of callers: the AutoBolt worker
// (RS256 JWT), customers (session tokens) and operators (API keys or basic
// credentials).
type SecHandler struct {
	publicKey *rsa.PublicKey
	issuer    string
	auth      auth.Service
	staff     auth.StaffAuthenticator
}

type ctxKey string

const (
	// WorkerKey holds the subject of a verified worker token.
	WorkerKey ctxKey = "worker"
	// UserKey holds the *domain.User of a verified session.
	UserKey ctxKey = "user"
	// SessionTokenKey holds the raw session token of a verified session.
	SessionTokenKey ctxKey = "sessionToken"
	// PrincipalKey holds the *auth.Principal of an authenticated operator.
	PrincipalKey ctxKey = "principal"
)

// NewSecHandler parses the verification key and returns a SecHandler.
func NewSecHandler(opts *SecHandlerOptions, authService auth.Service, staff auth.StaffAuthenticator) (*SecHandler, error) {
	pem := opts.PublicKey
	if pem == "" && opts.PublicKeyPath != "" {
		b, err := os.ReadFile(opts.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("could not read public key: %w", err)
		}
		pem = string(b)
	}

	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	if err != nil {
		return nil, fmt.Errorf("could not parse public key: %w", err)
	}

	return &SecHandler{
		publicKey: pub,
		issuer:    opts.Issuer,
		auth:      authService,
		staff:     staff,
	}, nil
}

// HandleBearerAuth verifies a worker token and stores its subject in the
// returned context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, parserOpts...)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, WorkerKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("worker", claims.Subject)), nil
}

// bearerToken returns the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// RequireWorker rejects requests without a valid worker token.
func (s *SecHandler) RequireWorker(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			controller.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			controller.WriteError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *SecHandler) withSession(r *http.Request, token string) (*http.Request, error) {
	user, err := s.auth.Authenticate(r.Context(), token)
	if err != nil {
		return r, err //nolint: wrapcheck
	}

	ctx := context.WithValue(r.Context(), UserKey, user)
	ctx = context.WithValue(ctx, SessionTokenKey, token)
	ctx = logger.WithFields(ctx, zap.Stringer("user_id", user.ID))

	return r.WithContext(ctx), nil
}

// RequireSession rejects requests without a valid session token.
func (s *SecHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			controller.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing session token"))

			return
		}

		r, err := s.withSession(r, token)
		if err != nil {
			controller.WriteError(w, r, err)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// OptionalSession attaches the user of a valid session token and lets
// anonymous requests through. An invalid token is still rejected.
func (s *SecHandler) OptionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)

			return
		}

		r, err := s.withSession(r, token)
		if err != nil {
			controller.WriteError(w, r, err)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose operator credentials do not satisfy
// role. API keys are read from "Authorization: Bearer" or X-API-Key.
func (s *SecHandler) RequireRole(role domain.StaffRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := s.operator(r)
			if err != nil {
				controller.WriteError(w, r, err)

				return
			}
			if !principal.Role.Satisfies(role) {
				controller.WriteError(w, r, serrors.With(serrors.ErrForbidden, "%s access required", role))

				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			ctx = logger.WithFields(ctx,
				zap.String("operator", principal.Name),
				zap.String("role", string(principal.Role)),
				zap.Bool("fallback_credentials", principal.Fallback))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *SecHandler) operator(r *http.Request) (*auth.Principal, error) {
	if username, password, ok := r.BasicAuth(); ok {
		return s.staff.AuthenticateBasic(r.Context(), username, password) //nolint: wrapcheck
	}

	key := r.Header.Get("X-API-Key")
	if token, ok := bearerToken(r); ok {
		key = token
	}
	if key == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing credentials")
	}

	return s.staff.AuthenticateAPIKey(r.Context(), key) //nolint: wrapcheck
}

// GetUserFromContext returns the session user, or nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(UserKey).(*domain.User)

	return u
}

// GetWorkerFromContext returns the subject of the worker token.
func GetWorkerFromContext(ctx context.Context) string {
	w, _ := ctx.Value(WorkerKey).(string)

	return w
}

// GetPrincipalFromContext returns the authenticated operator.
func GetPrincipalFromContext(ctx context.Context) *auth.Principal {
	p, _ := ctx.Value(PrincipalKey).(*auth.Principal)

	return p
}

func getSessionToken(ctx context.Context) string {
	t, _ := ctx.Value(SessionTokenKey).(string)

	return t
}
