package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/model"
	"github.com/campusjive/campus-events/internal/store"
)

// BookingHandler implements the student-facing registration endpoints and
// the ticket projection.
type BookingHandler struct {
	Store *store.Store
}

func NewBookingHandler(s *store.Store) *BookingHandler {
	return &BookingHandler{Store: s}
}

type createBookingReq struct {
	CustName  string `json:"custName"`
	CustEmail string `json:"custEmail"`
	EventID   string `json:"eventId"`
}

// CreateBooking handles POST /v1/bookings. Input validation lives here at
// the API boundary; the store trusts its caller. The event name is captured
// from the live event at booking time and stays frozen afterwards.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.CustName = strings.TrimSpace(req.CustName)
	req.CustEmail = strings.ToLower(strings.TrimSpace(req.CustEmail))
	if req.CustName == "" || req.CustEmail == "" || req.EventID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and event are required"})
	}
	ev, ok := h.Store.EventByID(req.EventID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	}

	b := h.Store.AddBooking(c.Request().Context(), req.CustName, req.CustEmail, ev.ID, ev.Name)
	return c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /v1/bookings. Admins see every booking; students
// only see their own, matched by the email claim.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	all := h.Store.Bookings()
	if str(c.Get("role")) == model.RoleAdmin {
		return c.JSON(http.StatusOK, all)
	}
	email := str(c.Get("email"))
	mine := make([]model.Booking, 0)
	for _, b := range all {
		if strings.EqualFold(b.CustEmail, email) {
			mine = append(mine, b)
		}
	}
	return c.JSON(http.StatusOK, mine)
}

type ticketResp struct {
	BookingID         string `json:"bookingId"`
	EventName         string `json:"eventName"`
	CustName          string `json:"custName"`
	CustEmail         string `json:"custEmail"`
	Status            string `json:"status"`
	ParticipantNumber int    `json:"participantNumber"`
	TotalParticipants int    `json:"totalParticipants"`
}

// GetTicket handles GET /v1/tickets/:bookingId. The projection includes the
// booking's 1-based rank among all approved bookings of its event, ordered
// by identity string, plus the total approved count. Admins may view any
// ticket; a student may only view their own and only once it is approved.
func (h *BookingHandler) GetTicket(c echo.Context) error {
	b, ok := h.Store.BookingByID(c.Param("bookingId"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	isAdmin := str(c.Get("role")) == model.RoleAdmin
	isOwner := strings.EqualFold(str(c.Get("email")), b.CustEmail)
	if !isAdmin && !(isOwner && b.Status == model.BookingApproved) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to view this ticket"})
	}

	number, total := ticketRank(h.Store.Bookings(), b)
	return c.JSON(http.StatusOK, ticketResp{
		BookingID:         b.ID,
		EventName:         b.EventName,
		CustName:          b.CustName,
		CustEmail:         b.CustEmail,
		Status:            b.Status,
		ParticipantNumber: number,
		TotalParticipants: total,
	})
}

// ticketRank computes the booking's position among the approved bookings of
// its event, sorted by identity string. A booking that is not itself
// approved gets rank 0 (admins can still inspect such tickets).
func ticketRank(all []model.Booking, target model.Booking) (number, total int) {
	approved := make([]model.Booking, 0)
	for _, b := range all {
		if b.EventID == target.EventID && b.Status == model.BookingApproved {
			approved = append(approved, b)
		}
	}
	sort.Slice(approved, func(i, j int) bool { return approved[i].ID < approved[j].ID })
	for i, b := range approved {
		if b.ID == target.ID {
			number = i + 1
			break
		}
	}
	return number, len(approved)
}
