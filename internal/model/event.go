package model

// Event represents a single campus event that students can browse and
// register for.  Events are persisted as one JSON document per collection,
// so the json tags below define the on-disk shape as well as the API shape.
// The category is referenced by name rather than by identifier; deleting a
// category deliberately leaves events pointing at the old name.
//
// Fields:
//  ID          – opaque unique identifier, generated at creation.
//  Name        – display name of the event.
//  Category    – category name (not a foreign key).
//  Description – free-text description shown on the event card.
//  Image       – image URL; a placeholder is generated when omitted.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
