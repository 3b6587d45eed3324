// Package handler: admin endpoints. Every route in this file sits behind
// the JWT middleware plus RequireRole("admin"); the store itself performs
// no authorization, so these handlers are the only mutation path exposed to
// the admin role.
package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/model"
	"github.com/campusjive/campus-events/internal/queue"
	queue_publisher "github.com/campusjive/campus-events/internal/service"
	"github.com/campusjive/campus-events/internal/store"
)

// AdminHandler implements catalog management, booking decisions, gallery
// management, PIN rotation, background swaps and the participant export.
type AdminHandler struct {
	Store *store.Store
}

func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{Store: s}
}

// ----- Events -----

type createEventReq struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateEvent handles POST /v1/admin/events. When no image is supplied the
// store generates a placeholder URL.
func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" || req.Category == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, category and description are required"})
	}
	e := h.Store.AddEvent(c.Request().Context(), req.Name, req.Category, req.Description, strings.TrimSpace(req.Image))
	return c.JSON(http.StatusCreated, e)
}

// DeleteEvent handles DELETE /v1/admin/events/:id. Deleting an event
// cascades to its bookings; deleting an unknown id is a silent no-op, so
// the response is 204 either way.
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	h.Store.DeleteEvent(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ----- Categories -----

type createCategoryReq struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /v1/admin/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req createCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	cat := h.Store.AddCategory(c.Request().Context(), name)
	return c.JSON(http.StatusCreated, cat)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id. Events keep their
// category name; there is no cascade here.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	h.Store.DeleteCategory(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ----- Photos -----

type createPhotoReq struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// CreatePhoto handles POST /v1/admin/photos. New photos are prepended so
// the gallery stays most-recent-first.
func (h *AdminHandler) CreatePhoto(c echo.Context) error {
	var req createPhotoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Src) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "src is required"})
	}
	alt := strings.TrimSpace(req.Alt)
	if alt == "" {
		alt = "Event photo"
	}
	p := h.Store.AddPhoto(c.Request().Context(), req.Src, alt)
	return c.JSON(http.StatusCreated, p)
}

// DeletePhoto handles DELETE /v1/admin/photos/:id.
func (h *AdminHandler) DeletePhoto(c echo.Context) error {
	h.Store.DeletePhoto(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// ----- Booking decisions -----

type decideBookingReq struct {
	Status string `json:"status"` // approved | rejected
}

// DecideBooking handles PATCH /v1/admin/bookings/:id/status. Only the two
// terminal statuses are accepted; a booking can never go back to pending
// through the API. The decision is broadcast fire-and-forget; a broker
// failure never fails the request.
func (h *AdminHandler) DecideBooking(c echo.Context) error {
	var req decideBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != model.BookingApproved && status != model.BookingRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be approved or rejected"})
	}
	id := c.Param("id")
	if !h.Store.UpdateBookingStatus(c.Request().Context(), id, status) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	b, _ := h.Store.BookingByID(id)

	_ = queue_publisher.PublishBookingDecided(c.Request().Context(), queue.BookingDecidedEvent{
		BookingID: b.ID,
		EventID:   b.EventID,
		EventName: b.EventName,
		CustName:  b.CustName,
		CustEmail: b.CustEmail,
		Status:    b.Status,
		DecidedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, b)
}

// ----- Shared student PIN -----

type updatePINReq struct {
	PIN string `json:"pin"`
}

// UpdatePIN handles PUT /v1/admin/pin. The PIN must be at least four
// characters with no whitespace. The change takes effect for every
// subsequent student login; already-issued sessions stay valid.
func (h *AdminHandler) UpdatePIN(c echo.Context) error {
	var req updatePINReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.PIN) < 4 || strings.ContainsAny(req.PIN, " \t\n") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin must be at least 4 characters with no whitespace"})
	}
	h.Store.UpdateStudentPIN(c.Request().Context(), req.PIN)
	return c.NoContent(http.StatusNoContent)
}

// ----- Background -----

type updateBackgroundReq struct {
	URL string `json:"url"`
}

// UpdateBackground handles PUT /v1/admin/background. The reference is held
// in memory only (persisting large media payloads would grow the value
// store without bound) and broadcast to interested views; it reverts to the
// default on restart.
func (h *AdminHandler) UpdateBackground(c echo.Context) error {
	var req updateBackgroundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required"})
	}
	h.Store.SetBackgroundURL(url)

	_ = queue_publisher.PublishBackgroundChanged(c.Request().Context(), queue.BackgroundChangedEvent{
		URL:       url,
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
