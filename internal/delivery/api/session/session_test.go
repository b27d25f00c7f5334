package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "storefront-session", MaxAge: 3600},
	}
	cfg.SecretKey.Session = "0123456789abcdef0123456789abcdef"

	manager, err := NewManager(cfg)
	require.NoError(t, err)

	return manager
}

func newContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(&config.Config{Session: &config.SessionConfig{CookieName: "s"}})
	assert.Error(t, err)
}

func TestManager_LoginThenRead(t *testing.T) {
	manager := newTestManager(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}

	c, rec := newContext()
	require.NoError(t, manager.Login(c, user))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	next, _ := newContext(cookies...)
	identity, ok := manager.Read(next)
	require.True(t, ok)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Email, identity.Email)
}

func TestManager_Read_NoCookie(t *testing.T) {
	manager := newTestManager(t)

	c, _ := newContext()
	_, ok := manager.Read(c)
	assert.False(t, ok)
}

func TestManager_Read_TamperedCookie(t *testing.T) {
	manager := newTestManager(t)

	c, _ := newContext(&http.Cookie{Name: "storefront-session", Value: "forged"})
	_, ok := manager.Read(c)
	assert.False(t, ok)
}

func TestManager_Clear(t *testing.T) {
	manager := newTestManager(t)

	c, rec := newContext()
	require.NoError(t, manager.Login(c, &entity.User{ID: uuid.New(), Email: "ana@example.com"}))

	cleared, clearRec := newContext(rec.Result().Cookies()...)
	require.NoError(t, manager.Clear(cleared))

	cookies := clearRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}
