// Package session manages the locally persisted identity of the current
// user. The web original keeps this state under two localStorage keys;
// the CLI keeps the same two keys in its local database.
package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/client/repositories/localstore"
	"github.com/akazakov/jobtrack/internal/dbx"
)

const (
	// keySession holds the current Session as JSON.
	keySession = "auth_user"
	// keyRememberUsername holds the last-used login identifier. It only
	// prefills the login prompt and has no bearing on authentication.
	keyRememberUsername = "remember_username"
)

// Manager reads and writes the persisted session. There is at most one
// session at a time; writes replace the previous value wholesale.
type Manager struct {
	db *sql.DB
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) repo(db dbx.DBTX) localstore.Repository {
	return localstore.NewSQLiteRepository(db)
}

// Current returns the stored session, or nil when none exists. A stored
// value that fails to parse behaves as absent and is removed, the same
// way the original discards an unparseable auth_user value.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	raw, err := m.repo(m.db).Get(ctx, keySession)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.ID.IsZero() {
		_ = m.repo(m.db).Delete(ctx, keySession)
		return nil, nil
	}
	return &sess, nil
}

// Save persists sess, replacing any prior session.
func (m *Manager) Save(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return m.repo(m.db).Set(ctx, keySession, raw)
}

// SaveLogin persists sess and the remembered username in one transaction.
// An empty rememberedUsername clears the remembered value.
func (m *Manager) SaveLogin(ctx context.Context, sess *models.Session, rememberedUsername string) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.repo(tx)
		if err := repo.Set(ctx, keySession, raw); err != nil {
			return err
		}
		if rememberedUsername == "" {
			return repo.Delete(ctx, keyRememberUsername)
		}
		return repo.Set(ctx, keyRememberUsername, []byte(rememberedUsername))
	})
}

// Clear removes the stored session. The remembered username is
// independent and survives logout.
func (m *Manager) Clear(ctx context.Context) error {
	return m.repo(m.db).Delete(ctx, keySession)
}

// RememberedUsername returns the last remembered login identifier, or ""
// when none is stored. Read failures behave as absent.
func (m *Manager) RememberedUsername(ctx context.Context) string {
	raw, err := m.repo(m.db).Get(ctx, keyRememberUsername)
	if err != nil || raw == nil {
		return ""
	}
	return string(raw)
}
