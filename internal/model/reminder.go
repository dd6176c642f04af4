package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder represents a scheduled care reminder for a user.
//
// SendAt is stored as an absolute instant; it enters and leaves the system
// as a KST civil time string (see pkg/kst). Once Sent is true the reminder
// is terminal and SendAt is immutable.
type Reminder struct {
	ID        uuid.UUID `json:"id"`         // time-ordered identifier (UUIDv7)
	UserID    string    `json:"user_id"`    // owner of the reminder
	Title     string    `json:"title"`      // notification title, non-empty
	Body      string    `json:"body"`       // notification body, may be empty
	DeepLink  string    `json:"deep_link"`  // in-app destination, e.g. "app://medication"
	SendAt    time.Time `json:"send_at"`    // absolute delivery instant
	Sent      bool      `json:"sent"`       // set by the delivery worker only
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeviceToken represents a registered push target for a user. A user may
// have several devices; identity is (UserID, Token).
type DeviceToken struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"` // FCM registration token, never serialized
	Platform  string    `json:"platform"` // "ios", "android", "web"
	Timezone  string    `json:"timezone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
