package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusjive/campus-events/internal/auth"
	"github.com/campusjive/campus-events/internal/config"
	"github.com/campusjive/campus-events/internal/model"
	"github.com/campusjive/campus-events/internal/store"
)

func newAuthHandler(st *store.Store) *AuthHandler {
	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 60}
	return NewAuthHandler(cfg, st, auth.NewGate(st, "campusjive", ""))
}

func TestLogin(t *testing.T) {
	st := newTestStore(t)
	h := newAuthHandler(st)

	t.Run("student with current pin", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"student","email":" S@U.edu ","pin":"jive@123"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp authResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "s@u.edu", resp.User.UID)
		require.Equal(t, model.RoleStudent, resp.User.Role)
		require.NotEmpty(t, resp.Access.Token)

		// The login is persisted as the session user.
		u, ok := st.User()
		require.True(t, ok)
		require.Equal(t, "s@u.edu", u.Email)
	})

	t.Run("student with wrong pin", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"student","email":"s@u.edu","pin":"wrong"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"student","email":"s@u.edu"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown method", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"oauth"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin pair", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"admin","user":"campusjive","pass":"jive@123"}`)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp authResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, model.RoleAdmin, resp.User.Role)
		require.Equal(t, "admin@campusjive.edu", resp.User.Email)
	})
}

func TestLogout(t *testing.T) {
	st := newTestStore(t)
	h := newAuthHandler(st)

	c, _ := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"student","email":"s@u.edu","pin":"jive@123"}`)
	require.NoError(t, h.Login(c))
	_, ok := st.User()
	require.True(t, ok)

	c, rec := newCtx(http.MethodPost, "/v1/auth/logout", "")
	require.NoError(t, h.Logout(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, ok = st.User()
	require.False(t, ok)

	// Logging out again is harmless.
	c, rec = newCtx(http.MethodPost, "/v1/auth/logout", "")
	require.NoError(t, h.Logout(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMe(t *testing.T) {
	st := newTestStore(t)
	h := newAuthHandler(st)

	t.Run("falls back to claims without a session", func(t *testing.T) {
		c, rec := newCtx(http.MethodGet, "/v1/me", "")
		asStudent(c, "s@u.edu")
		require.NoError(t, h.Me(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var u userPart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
		require.Equal(t, "s@u.edu", u.Email)
	})

	t.Run("prefers the persisted session", func(t *testing.T) {
		c, _ := newCtx(http.MethodPost, "/v1/auth/login", `{"method":"student","email":"s@u.edu","pin":"jive@123"}`)
		require.NoError(t, h.Login(c))
		// The first booking backfills the display name.
		ev := st.Events()[0]
		st.AddBooking(c.Request().Context(), "Sam Lee", "s@u.edu", ev.ID, ev.Name)

		c, rec := newCtx(http.MethodGet, "/v1/me", "")
		asStudent(c, "s@u.edu")
		require.NoError(t, h.Me(c))

		var u userPart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
		require.Equal(t, "Sam Lee", u.Name)
	})
}
