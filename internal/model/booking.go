package model

// Booking statuses.  A booking is created pending and moves to approved or
// rejected by an explicit admin decision.  The store does not guard against
// re-applying a decision; the API layer only exposes the two terminal values.
const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

// Booking records a student's registration request for an event.  The event
// name is denormalized at booking time and is not kept in sync with later
// event renames.  Bookings are never deleted individually; they disappear
// only when their event is deleted (cascade).
//
// Fields:
//  ID        – opaque unique identifier.
//  CustName  – requester display name.
//  CustEmail – requester email address.
//  EventID   – identifier of the target event.
//  EventName – event name captured at booking time.
//  Status    – pending, approved or rejected.
type Booking struct {
	ID        string `json:"id"`
	CustName  string `json:"custName"`
	CustEmail string `json:"custEmail"`
	EventID   string `json:"eventId"`
	EventName string `json:"eventName"`
	Status    string `json:"status"`
}
