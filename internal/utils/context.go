package utils

import (
	"context"
	"time"
)

type contextKey string

const ContextSessionKey contextKey = "session"

// SessionData is the authenticated-browser state carried through the request
// context. AccessToken is the upstream bearer token; Username is the cached
// display name captured at login.
type SessionData struct {
	SessionID   string
	Username    string
	AccessToken string
	ExpiresAt   time.Time
}

func GetSessionFromContext(ctx context.Context) (SessionData, bool) {
	session, ok := ctx.Value(ContextSessionKey).(SessionData)
	return session, ok
}
