package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/store"
	"github.com/campusjive/campus-events/internal/suggest"
)

// SuggestHandler implements the optional AI event-suggestion feature. The
// handler assembles three text bundles from store snapshots, awaits one
// call to the text-generation collaborator and returns its response
// verbatim. Concurrent requests are independent; there is no queueing or
// de-duplication.
type SuggestHandler struct {
	Store  *store.Store
	Client *suggest.Client
}

func NewSuggestHandler(s *store.Store, c *suggest.Client) *SuggestHandler {
	return &SuggestHandler{Store: s, Client: c}
}

// Suggest handles POST /v1/suggestions. A collaborator failure surfaces as
// a retryable 502; it is never fatal and never reaches the store.
func (h *SuggestHandler) Suggest(c echo.Context) error {
	if !h.Client.Enabled() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "suggestions are not configured"})
	}

	email := str(c.Get("email"))
	role := str(c.Get("role"))

	profile := "A student interested in a variety of campus activities."
	if email != "" {
		profile = fmt.Sprintf("A %s with email %s.", role, email)
	}

	var past []string
	for _, b := range h.Store.Bookings() {
		if strings.EqualFold(b.CustEmail, email) {
			past = append(past, b.EventName)
		}
	}
	pastEvents := "The user has no past event history."
	if len(past) > 0 {
		pastEvents = fmt.Sprintf("The user has previously booked: %s.", strings.Join(past, ", "))
	}

	var catalog []string
	for _, e := range h.Store.Events() {
		catalog = append(catalog, fmt.Sprintf("%s (%s): %s", e.Name, e.Category, e.Description))
	}

	text, err := h.Client.SuggestEvents(c.Request().Context(), suggest.Input{
		UserProfile: profile,
		PastEvents:  pastEvents,
		AllEvents:   strings.Join(catalog, "\n"),
	})
	if err != nil {
		if errors.Is(err, suggest.ErrUnavailable) {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": "Sorry, we couldn't generate suggestions at this time. Please try again later.",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "suggestion failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"suggestedEvents": text})
}
