// Package auth turns a credential submission into a session user or a
// rejection. There are deliberately only two credential policies: any
// student authenticates with the one shared PIN, and a single fixed admin
// account exists. This is not real per-user authentication and is not meant
// to be; the policies are named types behind one capability so a real
// credential store could be substituted later without touching callers.
package auth

import (
	"context"
	"errors"
	"log"

	"github.com/campusjive/campus-events/internal/model"
	"github.com/campusjive/campus-events/internal/utils"
)

// ErrInvalidCredentials is returned when the supplied secret does not match
// the policy's current expectation. Handlers should translate this into an
// HTTP 401 response.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMalformedRequest is returned when the login method is unknown or a
// required credential field is absent. Handlers should translate this into
// an HTTP 400 response.
var ErrMalformedRequest = errors.New("malformed login request")

// Fixed admin identity. The password for the account is held as a bcrypt
// hash; the default pair matches the original deployment and can be
// overridden through configuration.
const (
	MethodStudent = "student"
	MethodAdmin   = "admin"

	adminUID   = "admin-user"
	adminEmail = "admin@campusjive.edu"
	adminName  = "Admin"

	defaultAdminPassword = "jive@123"

	// studentPlaceholderName is used until a student's first booking
	// supplies their real name.
	studentPlaceholderName = "Student"
)

// Credentials carries every field a login attempt may supply. Which fields
// are required depends on the method.
type Credentials struct {
	Email string // student login: account email
	PIN   string // student login: shared secret
	User  string // admin login: username
	Pass  string // admin login: password
}

// PINSource exposes the current shared student secret. The domain store
// satisfies this; the indirection keeps the gate testable without a store.
type PINSource interface {
	StudentPIN() string
}

// Policy authenticates one login method.
type Policy interface {
	Authenticate(ctx context.Context, creds Credentials) (model.User, error)
}

// SharedSecretPolicy authenticates any student who supplies the current
// shared PIN. The PIN is read per attempt, so an admin changing it takes
// effect immediately without invalidating sessions that were already issued.
type SharedSecretPolicy struct {
	pins PINSource
}

// NewSharedSecretPolicy builds the student policy around a PIN source.
func NewSharedSecretPolicy(pins PINSource) *SharedSecretPolicy {
	return &SharedSecretPolicy{pins: pins}
}

// Authenticate checks the shared PIN and materializes a student user whose
// identity is their email. The display name starts as a placeholder and is
// replaced by the student's first booking.
func (p *SharedSecretPolicy) Authenticate(_ context.Context, creds Credentials) (model.User, error) {
	if creds.Email == "" || creds.PIN == "" {
		return model.User{}, ErrMalformedRequest
	}
	if creds.PIN != p.pins.StudentPIN() {
		return model.User{}, ErrInvalidCredentials
	}
	return model.User{
		UID:   creds.Email,
		Email: creds.Email,
		Name:  studentPlaceholderName,
		Role:  model.RoleStudent,
	}, nil
}

// FixedCredentialPolicy authenticates the single built-in admin pair.
type FixedCredentialPolicy struct {
	username string
	passHash string
}

// NewFixedCredentialPolicy builds the admin policy. When no hash is
// configured the built-in default password is hashed at startup so the
// stored form is always a bcrypt hash.
func NewFixedCredentialPolicy(username, passHash string) *FixedCredentialPolicy {
	if passHash == "" {
		h, err := utils.HashPassword(defaultAdminPassword, 10)
		if err != nil {
			// GenerateFromPassword only fails on an out-of-range cost.
			log.Printf("auth: hashing default admin password failed: %v", err)
		}
		passHash = h
	}
	return &FixedCredentialPolicy{username: username, passHash: passHash}
}

// Authenticate checks the fixed pair and materializes the admin user.
func (p *FixedCredentialPolicy) Authenticate(_ context.Context, creds Credentials) (model.User, error) {
	if creds.User == "" || creds.Pass == "" {
		return model.User{}, ErrMalformedRequest
	}
	if creds.User != p.username || !utils.VerifyPassword(p.passHash, creds.Pass) {
		return model.User{}, ErrInvalidCredentials
	}
	return model.User{
		UID:   adminUID,
		Email: adminEmail,
		Name:  adminName,
		Role:  model.RoleAdmin,
	}, nil
}

// Gate resolves a login attempt against the policy registered for its
// method.
type Gate struct {
	policies map[string]Policy
}

// NewGate wires the two built-in policies.
func NewGate(pins PINSource, adminUser, adminPassHash string) *Gate {
	return &Gate{policies: map[string]Policy{
		MethodStudent: NewSharedSecretPolicy(pins),
		MethodAdmin:   NewFixedCredentialPolicy(adminUser, adminPassHash),
	}}
}

// Authenticate dispatches to the policy for method. Unknown methods fail
// with ErrMalformedRequest.
func (g *Gate) Authenticate(ctx context.Context, method string, creds Credentials) (model.User, error) {
	p, ok := g.policies[method]
	if !ok {
		return model.User{}, ErrMalformedRequest
	}
	return p.Authenticate(ctx, creds)
}
