// Package session keeps the browser login in a signed cookie.
package session

import (
	"net/http"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	valueUserID = "userID"
	valueEmail  = "email"
)

// Identity is what the session cookie remembers about the logged-in user.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Manager reads and writes the session cookie.
type Manager struct {
	store      *sessions.CookieStore
	cookieName string
}

// NewManager creates a cookie-backed session manager signed with the session secret.
func NewManager(cfg *config.Config) (*Manager, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret key is required")
	}

	store := sessions.NewCookieStore([]byte(cfg.SecretKey.Session))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, cookieName: cfg.Session.CookieName}, nil
}

// Read returns the identity stored in the request cookie, if any.
// A tampered or expired cookie reads as no session.
func (m *Manager) Read(c echo.Context) (Identity, bool) {
	sess, err := m.store.Get(c.Request(), m.cookieName)
	if err != nil || sess.IsNew {
		return Identity{}, false
	}

	var identity Identity
	if raw, ok := sess.Values[valueUserID].(string); ok {
		if userID, err := uuid.Parse(raw); err == nil {
			identity.UserID = userID
		}
	}
	identity.Email, _ = sess.Values[valueEmail].(string)

	if identity.UserID == uuid.Nil && identity.Email == "" {
		return Identity{}, false
	}

	return identity, true
}

// Login writes the user into the session cookie.
func (m *Manager) Login(c echo.Context, user *entity.User) error {
	sess, _ := m.store.Get(c.Request(), m.cookieName)
	sess.Values[valueUserID] = user.ID.String()
	sess.Values[valueEmail] = user.Email

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to save session")
}

// Clear expires the session cookie.
func (m *Manager) Clear(c echo.Context) error {
	sess, _ := m.store.Get(c.Request(), m.cookieName)
	delete(sess.Values, valueUserID)
	delete(sess.Values, valueEmail)
	sess.Options.MaxAge = -1

	return errors.Wrap(sess.Save(c.Request(), c.Response()), "failed to clear session")
}
