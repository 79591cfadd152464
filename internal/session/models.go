package session

import "time"

// Session is the server-side record behind a browser's session_id cookie.
// The upstream tokens never reach the browser; only the opaque session ID does.
type Session struct {
	SessionID    string    `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"not null" json:"username"`
	AccessToken  string    `gorm:"not null" json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"-"`
}

func (Session) TableName() string { return "fs_web.sessions" }
