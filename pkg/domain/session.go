package domain

import "time"

// Session is a login session. Only the hash of the bearer token is stored.
type Session struct {
	TokenHash string    `json:"-"`
	UserID    UserID    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserAgent string    `json:"-"`
	IP        string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
