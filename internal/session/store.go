package session

import (
	"time"

	"github.com/FundSpring/FS-Web/internal/db"
	"github.com/FundSpring/FS-Web/internal/utils"
	"github.com/google/uuid"
)

// TTL is how long a browser session stays valid. No refresh logic exists:
// when the session lapses the user logs in again.
const TTL = 6 * time.Hour

// Create stores a new session for the given tokens and returns its ID.
// An existing session for the same username is replaced, matching the
// one-session-per-login behavior of the original client storage.
func Create(username, accessToken, refreshToken string) (string, error) {
	id := uuid.New().String()

	var existing Session
	db.DB.Where("username = ?", username).First(&existing)
	if existing.SessionID != "" {
		err := db.DB.Model(&existing).Updates(Session{
			SessionID:    id,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(TTL),
		}).Error
		return id, err
	}

	err := db.DB.Create(&Session{
		SessionID:    id,
		Username:     username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(TTL),
	}).Error
	return id, err
}

// Delete removes the session row for the given ID. Missing rows are not an
// error; logout is idempotent.
func Delete(sessionID string) error {
	return db.DB.Delete(&Session{}, "session_id = ?", sessionID).Error
}

// SessionInfo implements middleware.SessionFetcher against the sessions table.
type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	var session Session

	err := db.DB.First(&session, "session_id = ?", id).Error
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		SessionID:   session.SessionID,
		Username:    session.Username,
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}
