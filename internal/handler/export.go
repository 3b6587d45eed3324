package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusjive/campus-events/internal/model"
)

// DownloadParticipants handles GET /v1/admin/events/:id/participants.csv.
// It exports a two-column CSV (header row "Name,Email") of every approved
// booking for the selected event. The filename is derived from the event
// name: lowercased, whitespace collapsed to underscores, plus the
// "_participants.csv" suffix. An event with no approved bookings yields a
// 404 rather than an empty file.
func (h *AdminHandler) DownloadParticipants(c echo.Context) error {
	ev, ok := h.Store.EventByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	}

	approved := make([]model.Booking, 0)
	for _, b := range h.Store.Bookings() {
		if b.EventID == ev.ID && b.Status == model.BookingApproved {
			approved = append(approved, b)
		}
	}
	if len(approved) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no approved participants for this event"})
	}

	body, err := participantsCSV(approved)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", participantsFilename(ev.Name)))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
}

// participantsCSV renders the approved bookings as CSV with a Name,Email
// header row.
func participantsCSV(bookings []model.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Name", "Email"}); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if err := w.Write([]string{b.CustName, b.CustEmail}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// participantsFilename builds the download filename from the event name.
func participantsFilename(eventName string) string {
	name := strings.ToLower(strings.Join(strings.Fields(eventName), "_"))
	return name + "_participants.csv"
}
