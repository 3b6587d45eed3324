package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/campusjive/campus-events/internal/model"
)

func TestCreateBooking(t *testing.T) {
	st := newTestStore(t)
	h := NewBookingHandler(st)
	ev := st.Events()[0]

	t.Run("missing fields", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/bookings", `{"custName":"","custEmail":"s@u.edu","eventId":"1"}`)
		asStudent(c, "s@u.edu")
		require.NoError(t, h.CreateBooking(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/bookings", `{"custName":"Sam","custEmail":"s@u.edu","eventId":"no-such"}`)
		asStudent(c, "s@u.edu")
		require.NoError(t, h.CreateBooking(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost, "/v1/bookings", `{"custName":"Sam Lee","custEmail":"S@U.edu","eventId":"`+ev.ID+`"}`)
		asStudent(c, "s@u.edu")
		require.NoError(t, h.CreateBooking(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var b model.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		require.NotEmpty(t, b.ID)
		require.Equal(t, model.BookingPending, b.Status)
		// The event name is captured server-side at booking time.
		require.Equal(t, ev.Name, b.EventName)
		require.Equal(t, "s@u.edu", b.CustEmail)
	})
}

func TestListBookings(t *testing.T) {
	st := newTestStore(t)
	h := NewBookingHandler(st)
	ctx := context.Background()
	ev := st.Events()[0]

	st.AddBooking(ctx, "Sam", "s@u.edu", ev.ID, ev.Name)
	st.AddBooking(ctx, "Kim", "k@u.edu", ev.ID, ev.Name)

	t.Run("admin sees all", func(t *testing.T) {
		c, rec := newCtx(http.MethodGet, "/v1/bookings", "")
		asAdmin(c)
		require.NoError(t, h.ListBookings(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got []model.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
	})

	t.Run("student sees own only", func(t *testing.T) {
		c, rec := newCtx(http.MethodGet, "/v1/bookings", "")
		asStudent(c, "S@U.EDU")
		require.NoError(t, h.ListBookings(c))

		var got []model.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		require.Equal(t, "Sam", got[0].CustName)
	})
}

func TestGetTicket(t *testing.T) {
	st := newTestStore(t)
	h := NewBookingHandler(st)
	ctx := context.Background()
	ev := st.Events()[0]

	approvedB := st.AddBooking(ctx, "Sam", "s@u.edu", ev.ID, ev.Name)
	pendingB := st.AddBooking(ctx, "Kim", "k@u.edu", ev.ID, ev.Name)
	st.UpdateBookingStatus(ctx, approvedB.ID, model.BookingApproved)

	get := func(bookingID string, stamp func(c echo.Context)) (*ticketResp, int) {
		c, rec := newCtx(http.MethodGet, "/v1/tickets/"+bookingID, "")
		c.SetParamNames("bookingId")
		c.SetParamValues(bookingID)
		stamp(c)
		require.NoError(t, h.GetTicket(c))
		if rec.Code != http.StatusOK {
			return nil, rec.Code
		}
		var tr ticketResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
		return &tr, rec.Code
	}

	t.Run("unknown booking", func(t *testing.T) {
		_, code := get("no-such", func(c echo.Context) { asAdmin(c) })
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("owner of approved booking", func(t *testing.T) {
		tr, code := get(approvedB.ID, func(c echo.Context) { asStudent(c, "S@U.edu") })
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 1, tr.ParticipantNumber)
		require.Equal(t, 1, tr.TotalParticipants)
		require.Equal(t, ev.Name, tr.EventName)
	})

	t.Run("owner of pending booking is refused", func(t *testing.T) {
		_, code := get(pendingB.ID, func(c echo.Context) { asStudent(c, "k@u.edu") })
		require.Equal(t, http.StatusForbidden, code)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		_, code := get(approvedB.ID, func(c echo.Context) { asStudent(c, "other@u.edu") })
		require.Equal(t, http.StatusForbidden, code)
	})

	t.Run("admin views pending ticket with rank zero", func(t *testing.T) {
		tr, code := get(pendingB.ID, func(c echo.Context) { asAdmin(c) })
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 0, tr.ParticipantNumber)
		require.Equal(t, 1, tr.TotalParticipants)
	})
}

func TestTicketRank(t *testing.T) {
	mk := func(id, eventID, status string) model.Booking {
		return model.Booking{ID: id, EventID: eventID, Status: status}
	}
	all := []model.Booking{
		mk("c", "ev1", model.BookingApproved),
		mk("a", "ev1", model.BookingApproved),
		mk("b", "ev1", model.BookingPending),
		mk("d", "ev2", model.BookingApproved),
	}

	// Rank follows identity-string order among approved bookings of the
	// same event only.
	number, total := ticketRank(all, mk("c", "ev1", model.BookingApproved))
	require.Equal(t, 2, number)
	require.Equal(t, 2, total)

	number, total = ticketRank(all, mk("a", "ev1", model.BookingApproved))
	require.Equal(t, 1, number)
	require.Equal(t, 2, total)

	// A non-approved target counts zero but still sees the total.
	number, total = ticketRank(all, mk("b", "ev1", model.BookingPending))
	require.Equal(t, 0, number)
	require.Equal(t, 2, total)
}
