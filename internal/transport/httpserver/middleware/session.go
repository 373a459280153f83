package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"testtrack/internal/config"
	userdomain "testtrack/internal/domain/user"
	"testtrack/pkg/logger"
)

const sessionIssuer = "testtrack"

var ErrInvalidSession = errors.New("invalid session token")

type UserLoader interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
}

// Sessions issues and verifies HS256 session tokens. The token only carries
// the user id; the user row is reloaded on every request.
type Sessions struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	users      UserLoader
	log        logger.Logger
	now        func() time.Time
}

func NewSessions(cfg config.SessionConfig, users UserLoader, log logger.Logger) *Sessions {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "session_token"
	}
	return &Sessions{
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		cookieName: cookieName,
		secure:     cfg.CookieSecure,
		users:      users,
		log:        log,
		now:        time.Now,
	}
}

func (s *Sessions) Issue(userID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return token, expiresAt, nil
}

func (s *Sessions) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

func (s *Sessions) SetCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware resolves the caller from the session cookie or a bearer token
// and rejects the request with 401 when neither identifies a user.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := s.tokenFromRequest(r)
		if !ok {
			unauthorized(w)
			return
		}

		userID, err := s.Parse(token)
		if err != nil {
			s.log.BusinessError("auth: invalid session", err, "path", r.URL.Path)
			unauthorized(w)
			return
		}

		user, err := s.users.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				s.log.BusinessError("auth: session user not found", err, "user_id", userID)
			} else {
				s.log.InternalError("auth: load session user failed", err, "user_id", userID)
			}
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (s *Sessions) tokenFromRequest(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return bearerToken(r.Header.Get("Authorization"))
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
