// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingDecidedEvent is published when an admin approves or rejects a
// registration request. It carries enough denormalized information for
// downstream consumers to log or notify without querying the store.
type BookingDecidedEvent struct {
	BookingID string `json:"booking_id"`
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
	CustName  string `json:"cust_name"`
	CustEmail string `json:"cust_email"`
	Status    string `json:"status"`
	DecidedAt string `json:"decided_at"`
}

// BackgroundChangedEvent is broadcast when an admin swaps the background
// media reference. The reference itself is deliberately not persisted, so
// this event is the only way interested views learn about the change.
type BackgroundChangedEvent struct {
	URL       string `json:"url"`
	ChangedAt string `json:"changed_at"`
}
