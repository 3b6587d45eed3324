package model

// User roles.  There are exactly two: any student authenticated by the
// shared PIN, and the single fixed admin account.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the session-scoped account record.  At most one user is live per
// deployment at a time; it is mirrored to the persistence adapter so a
// restart restores the session.  A student's name starts as a placeholder
// and is filled in by their first booking that matches the session email.
//
// Fields:
//  UID   – identity; the email for students, a fixed value for the admin.
//  Email – account email address.
//  Name  – display name.
//  Role  – "student" or "admin".
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
