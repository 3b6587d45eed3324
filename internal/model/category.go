package model

// Category is a free-standing label that events reference by name.
//
// Fields:
//  ID   – opaque unique identifier.
//  Name – unique-ish display name (uniqueness is not enforced).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
