// Package session stores respondent runtime state server-side: which
// question a respondent is on and the answers collected so far. Two
// implementations exist, an in-memory store for single-node deployments and
// tests, and a Redis store for anything load-balanced.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session is one respondent's walk through a published form.
type Session struct {
	ID         string         `json:"id"`
	FormID     uint           `json:"form_id"`
	FormViewID uint           `json:"form_view_id"`
	Idx        int            `json:"idx"`
	Answers    map[string]any `json:"answers"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Store persists sessions between respondent requests. Sessions are
// short-lived; implementations may expire them after TTL.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// TTL bounds how long an abandoned session survives.
const TTL = 24 * time.Hour
