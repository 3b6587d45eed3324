package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/campusjive/campus-events/internal/utils"
)

const testSecret = "test-secret"

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, "s@u.edu", "s@u.edu", "Sam", "student", 60)
	require.NoError(t, err)

	t.Run("valid token sets claims", func(t *testing.T) {
		rec, c := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+access.Token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "s@u.edu", c.Get("uid"))
		require.Equal(t, "Sam", c.Get("name"))
		require.Equal(t, "student", c.Get("role"))
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _ := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec, _ := doRequest(t, []echo.MiddlewareFunc{JWTAuth("other-secret")}, "Bearer "+access.Token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, _ := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	student, err := utils.NewAccessToken(testSecret, "s@u.edu", "s@u.edu", "Sam", "student", 60)
	require.NoError(t, err)

	t.Run("allowed role", func(t *testing.T) {
		rec, _ := doRequest(t,
			[]echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("student", "admin")},
			"Bearer "+student.Token)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role not in list", func(t *testing.T) {
		rec, _ := doRequest(t,
			[]echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("admin")},
			"Bearer "+student.Token)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
