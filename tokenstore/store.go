// Package tokenstore persists the gateway's auth token and authenticated flag.
//
// Two keys are kept, matching what the mobile client stored in its defaults:
// KeyToken holds the opaque server token and KeyAuthenticated a boolean flag.
// Stores are safe for concurrent use: writes replace the whole Session, so a
// reader never observes a half-written token.
package tokenstore

import (
	"context"
	"errors"
)

const (
	KeyToken         = "authToken"
	KeyAuthenticated = "isAuthenticated"
)

// Session is the persisted authentication state.
type Session struct {
	Token         string `json:"authToken"`
	Authenticated bool   `json:"isAuthenticated"`
}

// HasToken reports whether a non-empty token is stored.
func (s Session) HasToken() bool { return s.Token != "" }

// Store is implemented by every persistence backend.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

var ErrUnknownBackend = errors.New("tokenstore: unknown backend")
