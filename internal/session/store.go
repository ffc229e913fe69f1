package session

import (
	"context"
	"errors"
	"time"

	"resumi/internal/config"
	"resumi/pkg/models"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session holds everything the service knows about one user interaction:
// the extracted profile and, once submitted, their preferences.
type Session struct {
	ID          string                  `json:"id"`
	Profile     *models.Profile         `json:"profile"`
	Preferences *models.UserPreferences `json:"preferences,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// Store is the session persistence interface. Handlers receive a Store
// rather than touching any shared map; backends are swappable between
// in-process memory and Redis.
type Store interface {
	// Create persists a new session
	Create(ctx context.Context, session *Session) error

	// Get returns the session for id, or ErrNotFound
	Get(ctx context.Context, id string) (*Session, error)

	// Update replaces the stored session in place
	Update(ctx context.Context, session *Session) error

	// Delete removes the session; deleting a missing session is not an error
	Delete(ctx context.Context, id string) error

	// Close releases backend resources
	Close() error
}

// NewStore builds the session store the configuration asks for.
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.Sessions.Backend {
	case "redis":
		return NewRedisStore(cfg)
	default:
		return NewMemoryStore(cfg.Sessions.TTL), nil
	}
}
