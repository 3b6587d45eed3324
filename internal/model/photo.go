package model

// Photo is a gallery entry uploaded by an admin.  The collection is kept
// most-recent-first: new photos are prepended rather than appended.
//
// Fields:
//  ID  – opaque unique identifier.
//  Src – image URL or data reference.
//  Alt – alternative text for the image.
type Photo struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}
