package transport

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	// SessionHeader lets a client pin its own tab-scoped cart session.
	SessionHeader = "X-Session-ID"

	// SessionCookie is the fallback identity for plain browser clients.
	SessionCookie = "bloom_session"
)

// SessionID resolves the cart session for a request: an explicit header
// wins, then the session cookie; otherwise a fresh ID is minted and set as
// a cookie on the response.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}

	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
