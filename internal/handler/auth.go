package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/auth"
	"github.com/campusjive/campus-events/internal/config"
	"github.com/campusjive/campus-events/internal/store"
	"github.com/campusjive/campus-events/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store *store.Store
	Gate  *auth.Gate
}

func NewAuthHandler(cfg config.Config, s *store.Store, g *auth.Gate) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: s, Gate: g}
}

// ----- DTOs -----

type loginReq struct {
	Method string `json:"method"` // student | admin
	Email  string `json:"email"`
	PIN    string `json:"pin"`
	User   string `json:"user"`
	Pass   string `json:"pass"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Login resolves the credential submission through the auth gate. On
// success the user is stored as the persisted session user and an access
// token is issued for the protected routes.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := h.Gate.Authenticate(c.Request().Context(), strings.TrimSpace(req.Method), auth.Credentials{
		Email: req.Email,
		PIN:   req.PIN,
		User:  strings.TrimSpace(req.User),
		Pass:  req.Pass,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		case errors.Is(err, auth.ErrMalformedRequest):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid login request"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
		}
	}

	// Persist the session so a restart restores it, then issue the token.
	h.Store.SetUser(c.Request().Context(), u)

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.UID, u.Email, u.Name, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   userPart{UID: u.UID, Email: u.Email, Name: u.Name, Role: u.Role},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout clears the persisted session user unconditionally; there is no
// error path. Tokens that were already issued simply expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Store.ClearUser(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the persisted session user, falling back to the token claims
// when the session record is absent (e.g. cleared from another client).
func (h *AuthHandler) Me(c echo.Context) error {
	if u, ok := h.Store.User(); ok {
		return c.JSON(http.StatusOK, userPart{UID: u.UID, Email: u.Email, Name: u.Name, Role: u.Role})
	}
	return c.JSON(http.StatusOK, userPart{
		UID:   str(c.Get("uid")),
		Email: str(c.Get("email")),
		Name:  str(c.Get("name")),
		Role:  str(c.Get("role")),
	})
}

// str converts a context value set by the JWT middleware to a string.
func str(v any) string {
	s, _ := v.(string)
	return s
}
