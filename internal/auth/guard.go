package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

const sessionKey = "auth_session"

type sessionContextKey struct{}

// Session is the logged-in state of one client. Account is a snapshot taken
// at login and does not follow later changes to the stored account.
type Session struct {
	ID      string
	Account domain.Account
}

// Guard resolves, creates and destroys sessions for requests.
type Guard struct {
	store      SessionStore
	tokens     *TokenManager
	cookieName string
	secure     bool
	logger     *zap.Logger
}

// NewGuard constructs a guard.
func NewGuard(store SessionStore, tokens *TokenManager, cfg config.SessionConfig, logger *zap.Logger) *Guard {
	return &Guard{
		store:      store,
		tokens:     tokens,
		cookieName: cfg.CookieName,
		secure:     cfg.CookieSecure,
		logger:     logger,
	}
}

// Handle attaches the caller's session, if any, to the request. Missing,
// forged and stale cookies all resolve to an anonymous request.
func (g *Guard) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(g.cookieName)
	if raw == "" {
		return c.Next()
	}

	sessionID, err := g.tokens.Parse(raw)
	if err != nil {
		g.logger.Debug("discarding invalid session cookie", zap.Error(err))
		g.expireCookie(c)
		return c.Next()
	}

	account, err := g.store.Get(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			g.expireCookie(c)
			return c.Next()
		}
		return apperrors.NewInternalError(err)
	}

	setSession(c, &Session{ID: sessionID, Account: account})
	return c.Next()
}

// RequireSession rejects anonymous requests with a redirect to the login form.
func (g *Guard) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAuthenticated(c) {
			return apperrors.NewUnauthenticated()
		}
		return c.Next()
	}
}

// Login starts a fresh session holding a copy of account. A previous session
// on the same client is destroyed.
func (g *Guard) Login(c *fiber.Ctx, account domain.Account) error {
	ctx := c.UserContext()
	if prev, ok := SessionFromCtx(c); ok {
		if err := g.store.Delete(ctx, prev.ID); err != nil {
			return err
		}
	}

	sessionID := uuid.NewString()
	if err := g.store.Put(ctx, sessionID, account); err != nil {
		return err
	}
	token, err := g.tokens.Sign(sessionID)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   g.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	setSession(c, &Session{ID: sessionID, Account: account})
	return nil
}

// Logout destroys the caller's session state.
func (g *Guard) Logout(c *fiber.Ctx) error {
	if sess, ok := SessionFromCtx(c); ok {
		if err := g.store.Delete(c.UserContext(), sess.ID); err != nil {
			return err
		}
	}
	g.expireCookie(c)
	c.Locals(sessionKey, nil)
	c.SetUserContext(context.WithValue(c.UserContext(), sessionContextKey{}, (*Session)(nil)))
	return nil
}

func (g *Guard) expireCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     g.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   g.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func setSession(c *fiber.Ctx, sess *Session) {
	c.Locals(sessionKey, sess)
	c.SetUserContext(context.WithValue(c.UserContext(), sessionContextKey{}, sess))
}

// IsAuthenticated reports whether the request carries a session.
func IsAuthenticated(c *fiber.Ctx) bool {
	_, ok := SessionFromCtx(c)
	return ok
}

// SessionFromCtx retrieves the session attached by Guard.Handle or Login.
func SessionFromCtx(c *fiber.Ctx) (*Session, bool) {
	sess, ok := c.Locals(sessionKey).(*Session)
	return sess, ok && sess != nil
}

// SessionFromContext retrieves the session from a request context.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session)
	return sess, ok && sess != nil
}
