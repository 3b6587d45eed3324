package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/campusjive/campus-events/internal/model"
)

// Persistence keys. One JSON document per collection, one raw string for the
// PIN. The names are kept stable so existing deployments keep their data.
const (
	userKey       = "campus-jive-user"
	studentPINKey = "campus-jive-student-pin"
	eventsKey     = "campus-jive-events"
	categoriesKey = "campus-jive-categories"
	bookingsKey   = "campus-jive-bookings"
	photosKey     = "campus-jive-photos"
)

// DefaultPIN is the shared student secret used until an admin changes it.
// Absence of the PIN key in storage means this value is in effect.
const DefaultPIN = "jive@123"

// DefaultBackgroundURL is the media reference views fall back to. The
// background is deliberately never persisted (large media payloads would
// blow up the value store), so it reverts to this on every restart.
const DefaultBackgroundURL = "/neon2.mp4"

// Store is the single process-wide owner of all entity collections, the
// session user, the shared student PIN and the ephemeral background
// reference. Every mutation happens under the store lock, mutates the
// in-memory state and then synchronously mirrors the entire affected
// collection to the persistence adapter. Mirror failures are logged and
// swallowed: the in-memory state stays authoritative for the session and
// the operation reports success (best-effort persistence).
type Store struct {
	mu sync.RWMutex
	kv KV

	events     []model.Event
	categories []model.Category
	bookings   []model.Booking
	photos     []model.Photo

	user          *model.User
	studentPIN    string
	backgroundURL string
}

// Open loads every collection from the persistence adapter, seeding the
// built-in dataset where storage is absent or empty. Opening twice against
// the same storage yields the same state: a non-empty persisted collection
// is never overwritten by the seed. Open itself never fails; unreadable
// storage degrades to the seed dataset with a logged warning.
func Open(ctx context.Context, kv KV) *Store {
	s := &Store{kv: kv, studentPIN: DefaultPIN, backgroundURL: DefaultBackgroundURL}

	// Session user: absence simply means logged out.
	var u model.User
	switch found, err := s.load(ctx, userKey, &u); {
	case err != nil:
		log.Printf("store: load %s failed: %v", userKey, err)
	case found:
		s.user = &u
	}

	// Student PIN is stored as a raw string, not JSON.
	switch v, err := kv.Get(ctx, studentPINKey); {
	case err == nil && v != "":
		s.studentPIN = v
	case err != nil && err != ErrKeyNotFound:
		log.Printf("store: load %s failed: %v", studentPINKey, err)
	}

	s.events = loadOrSeed(ctx, s, eventsKey, seedEvents)
	s.categories = loadOrSeed(ctx, s, categoriesKey, seedCategories)
	s.photos = loadOrSeed(ctx, s, photosKey, seedPhotos)

	// Bookings are never seeded; absence is an empty collection.
	var bs []model.Booking
	if _, err := s.load(ctx, bookingsKey, &bs); err != nil {
		log.Printf("store: load %s failed: %v", bookingsKey, err)
	}
	s.bookings = bs

	return s
}

// loadOrSeed returns the persisted collection under key, or the seed when
// the key is absent or holds an empty collection. A freshly applied seed is
// immediately mirrored back so the next start finds a non-empty collection.
// Unreadable storage falls back to the seed in memory only.
func loadOrSeed[T any](ctx context.Context, s *Store, key string, seed func() []T) []T {
	var items []T
	found, err := s.load(ctx, key, &items)
	if err != nil {
		log.Printf("store: load %s failed, using seed: %v", key, err)
		return seed()
	}
	if !found || len(items) == 0 {
		items = seed()
		s.persist(ctx, key, items)
	}
	return items
}

// load unmarshals the JSON document under key into v. It reports whether
// the key existed; driver and decode errors are returned for the caller to
// log.
func (s *Store) load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if err == ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// persist mirrors v to the adapter under key. Failures are logged and
// swallowed; the caller's in-memory mutation stands regardless.
func (s *Store) persist(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: marshal %s failed: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		log.Printf("store: persist %s failed: %v", key, err)
	}
}

// newID returns a fresh opaque identity. UUIDs are never reused, which is
// all the identity contract requires.
func newID() string { return uuid.NewString() }

// ----- Events -----

// Events returns a snapshot of the event collection in insertion order.
func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event(nil), s.events...)
}

// EventByID looks up a single event.
func (s *Store) EventByID(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// AddEvent assigns a fresh identity (and a generated placeholder image when
// none is supplied), appends the event and mirrors the collection.
func (s *Store) AddEvent(ctx context.Context, name, category, description, image string) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/600/400?random=%s", newID())
	}
	e := model.Event{
		ID:          newID(),
		Name:        name,
		Category:    category,
		Description: description,
		Image:       image,
	}
	s.events = append(s.events, e)
	s.persist(ctx, eventsKey, s.events)
	return e
}

// DeleteEvent removes the event and cascades to every booking referencing
// it. Deleting an unknown id is a no-op. The cascade is two writes, not one
// transaction; a crash in between leaves orphaned bookings, which is
// acceptable for a best-effort local cache.
func (s *Store) DeleteEvent(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	s.persist(ctx, eventsKey, s.events)

	keptBookings := s.bookings[:0]
	for _, b := range s.bookings {
		if b.EventID != id {
			keptBookings = append(keptBookings, b)
		}
	}
	s.bookings = keptBookings
	s.persist(ctx, bookingsKey, s.bookings)
}

// ----- Categories -----

// Categories returns a snapshot of the category collection.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.categories...)
}

// AddCategory appends a category with a fresh identity.
func (s *Store) AddCategory(ctx context.Context, name string) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Category{ID: newID(), Name: name}
	s.categories = append(s.categories, c)
	s.persist(ctx, categoriesKey, s.categories)
	return c
}

// DeleteCategory removes a category. Events that reference the category by
// name keep the dangling name; there is intentionally no cascade here.
func (s *Store) DeleteCategory(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.persist(ctx, categoriesKey, s.categories)
}

// ----- Bookings -----

// Bookings returns a snapshot of the booking collection.
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Booking(nil), s.bookings...)
}

// BookingByID looks up a single booking.
func (s *Store) BookingByID(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// AddBooking creates a pending booking with a fresh identity and mirrors
// the collection. When the session user's email matches the requester
// email, the user's display name is taken from the booking and the session
// record is re-persisted; a student's first booking is how their real name
// replaces the login placeholder.
func (s *Store) AddBooking(ctx context.Context, custName, custEmail, eventID, eventName string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := model.Booking{
		ID:        newID(),
		CustName:  custName,
		CustEmail: custEmail,
		EventID:   eventID,
		EventName: eventName,
		Status:    model.BookingPending,
	}
	s.bookings = append(s.bookings, b)
	s.persist(ctx, bookingsKey, s.bookings)

	if s.user != nil && strings.EqualFold(s.user.Email, custEmail) {
		s.user.Name = custName
		s.persist(ctx, userKey, s.user)
	}
	return b
}

// UpdateBookingStatus rewrites the status of the matching booking in place
// and mirrors the collection. It reports whether the booking exists. The
// store does not guard against re-applying a decision; the API layer only
// exposes this to admins and only with terminal statuses.
func (s *Store) UpdateBookingStatus(ctx context.Context, id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			s.persist(ctx, bookingsKey, s.bookings)
			return true
		}
	}
	return false
}

// ----- Photos -----

// Photos returns a snapshot of the gallery, most recent first.
func (s *Store) Photos() []model.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Photo(nil), s.photos...)
}

// AddPhoto prepends a photo so the gallery stays reverse-chronological.
func (s *Store) AddPhoto(ctx context.Context, src, alt string) model.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := model.Photo{ID: newID(), Src: src, Alt: alt}
	s.photos = append([]model.Photo{p}, s.photos...)
	s.persist(ctx, photosKey, s.photos)
	return p
}

// DeletePhoto removes a photo; unknown ids are a no-op.
func (s *Store) DeletePhoto(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.photos[:0]
	for _, p := range s.photos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.photos = kept
	s.persist(ctx, photosKey, s.photos)
}

// ----- Session user -----

// User returns the current session user, if any.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// SetUser stores u as the current session user and mirrors it so a restart
// restores the session.
func (s *Store) SetUser(ctx context.Context, u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.persist(ctx, userKey, u)
}

// ClearUser logs the session out unconditionally; there is no error path.
func (s *Store) ClearUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.kv.Delete(ctx, userKey); err != nil {
		log.Printf("store: clear %s failed: %v", userKey, err)
	}
}

// ----- Shared student PIN -----

// StudentPIN returns the PIN all students currently authenticate with.
func (s *Store) StudentPIN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studentPIN
}

// UpdateStudentPIN replaces the shared secret in memory and in storage. It
// takes effect for every subsequent login attempt; sessions that were
// already issued stay valid.
func (s *Store) UpdateStudentPIN(ctx context.Context, pin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studentPIN = pin
	if err := s.kv.Set(ctx, studentPINKey, pin); err != nil {
		log.Printf("store: persist %s failed: %v", studentPINKey, err)
	}
}

// ----- Ephemeral background reference -----

// BackgroundURL returns the current background media reference.
func (s *Store) BackgroundURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backgroundURL
}

// SetBackgroundURL swaps the background reference in memory only. It is
// never written to the adapter, so it reverts to the default on restart;
// interested views learn about the change through the broadcast the caller
// publishes after this returns.
func (s *Store) SetBackgroundURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backgroundURL = url
}
