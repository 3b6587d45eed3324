// Package handler: public browse endpoints. These routes require no
// authentication so guests can look at the catalog, the gallery and the
// current background before logging in. Handlers only read store snapshots;
// they never mutate.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/store"
)

// PublicHandler exposes read-only views of the store.
type PublicHandler struct {
	Store *store.Store
}

func NewPublicHandler(s *store.Store) *PublicHandler {
	return &PublicHandler{Store: s}
}

// GetEvents handles GET /v1/events and returns all events in insertion order.
func (h *PublicHandler) GetEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Events())
}

// GetCategories handles GET /v1/categories.
func (h *PublicHandler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Categories())
}

// GetPhotos handles GET /v1/photos and returns the gallery most-recent-first.
func (h *PublicHandler) GetPhotos(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Photos())
}

// GetBackground handles GET /v1/background. The reference is ephemeral: it
// reverts to the built-in default whenever the service restarts.
func (h *PublicHandler) GetBackground(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"url": h.Store.BackgroundURL()})
}
