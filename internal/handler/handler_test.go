package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/store"
)

// newTestStore opens a store over the in-memory driver with the built-in
// seed applied.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(context.Background(), store.NewMemoryKV())
}

// newCtx builds an Echo context around a recorded request. body may be
// empty for requests without one.
func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// asStudent stamps the claim values the JWT middleware would set for a
// logged-in student.
func asStudent(c echo.Context, email string) {
	c.Set("uid", email)
	c.Set("email", email)
	c.Set("name", "Student")
	c.Set("role", "student")
}

// asAdmin stamps the admin claim values.
func asAdmin(c echo.Context) {
	c.Set("uid", "admin-user")
	c.Set("email", "admin@campusjive.edu")
	c.Set("name", "Admin")
	c.Set("role", "admin")
}
