package session

import "time"

// TTL matches the browser client's one-day cookie expiry.
const TTL = 24 * time.Hour

// Session is the signed-in identity. It is persisted on disk as the
// equivalent of the browser's session cookie and mirrored in memory for the
// lifetime of the process.
type Session struct {
	Email       string    `json:"email"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
