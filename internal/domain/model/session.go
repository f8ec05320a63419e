package model

import "time"

// SessionStatus is derived from the expiry window at read time.
type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusExpired SessionStatus = "expired"
)

// UploadPathPrefix prefixes the informational upload target of a session.
const UploadPathPrefix = "/upload/"

// Session is a time-boxed customer interaction window. It is never mutated
// after creation.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession stamps a session created at now that lives for ttl.
func NewSession(id string, now time.Time, ttl time.Duration) Session {
	return Session{ID: id, CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

// ExpiredAt reports whether the window closed before now.
func (s Session) ExpiredAt(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// StatusAt derives the session status for the given instant.
func (s Session) StatusAt(now time.Time) SessionStatus {
	if s.ExpiredAt(now) {
		return SessionStatusExpired
	}
	return SessionStatusActive
}

// SessionTicket is returned to the client that opened a session.
type SessionTicket struct {
	Session
	UploadPath string
}

// NewSessionTicket builds the ticket for s.
func NewSessionTicket(s Session) SessionTicket {
	return SessionTicket{Session: s, UploadPath: UploadPathPrefix + s.ID}
}

// SessionDetails is a live session together with its photos in upload order.
type SessionDetails struct {
	Session
	Photos []Photo
}

// LastUploadedAt returns creation time of the newest photo, nil when empty.
func (d SessionDetails) LastUploadedAt() *time.Time {
	if len(d.Photos) == 0 {
		return nil
	}
	last := d.Photos[len(d.Photos)-1].CreatedAt
	return &last
}
