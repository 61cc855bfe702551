// Package services contains the application services of the jobtrack
// client: account authentication and the ownership-scoped job operations.
// Services sit between the CLI views and the record access layer and own
// all business rules; the remote store validates nothing.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/client/session"
	"github.com/akazakov/jobtrack/internal/common"
	"github.com/akazakov/jobtrack/internal/logging"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Login: authenticate against the store and persist a session.
//   - Signup: create an account and persist a session.
//   - Resume: validate a previously stored session against the store.
//   - Logout: clear the stored session.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, username, password string, remember bool) (*models.Session, error)
	Signup(ctx context.Context, name, email, password string) (*models.Session, error)
	Resume(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	RememberedUsername(ctx context.Context) string
}

type authService struct {
	client client.Client
	sess   *session.Manager
	log    logging.Logger
}

// NewAuthService binds the service to the record store and the local
// session manager.
func NewAuthService(c client.Client, sess *session.Manager, log logging.Logger) AuthService {
	return &authService{client: c, sess: sess, log: log.With("component", "auth")}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Login matches the credentials against the user collection. Empty input
// is rejected locally with no network call. Zero matching accounts means
// invalid credentials; with one or more matches the first record wins.
// On success the session is persisted, together with the remembered
// username when remember is set.
func (a *authService) Login(ctx context.Context, username, password string, remember bool) (*models.Session, error) {
	u := strings.TrimSpace(username)
	p := strings.TrimSpace(password)
	if u == "" || p == "" {
		return nil, &models.ValidationError{Msg: "Please enter both username and password."}
	}

	users, err := a.client.FindUsersByCredentials(ctx, u, p)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, common.ErrInvalidCredentials
	}

	user := users[0]
	sess := &models.Session{ID: user.ID, Username: user.Username}

	remembered := ""
	if remember {
		remembered = u
	}
	if err := a.sess.SaveLogin(ctx, sess, remembered); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "user_id", sess.ID)
	return sess, nil
}

// Signup validates locally, refuses usernames that already exist, then
// creates the account and persists a session. The email doubles as the
// login username. The password travels and is stored in clear text, the
// same way the product it mirrors does it.
func (a *authService) Signup(ctx context.Context, name, email, password string) (*models.Session, error) {
	n := strings.TrimSpace(name)
	e := strings.TrimSpace(email)

	if len(n) < 2 {
		return nil, &models.ValidationError{Msg: "Please enter your full name."}
	}
	if !emailPattern.MatchString(e) {
		return nil, &models.ValidationError{Msg: "Please enter a valid email address."}
	}
	if len(password) < 6 {
		return nil, &models.ValidationError{Msg: "Password must be at least 6 characters."}
	}

	existing, err := a.client.FindUsersByUsername(ctx, e)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, common.ErrAccountExists
	}

	user, err := a.client.CreateUser(ctx, models.User{Username: e, Password: password, Name: n})
	if err != nil {
		return nil, err
	}

	sess := &models.Session{ID: user.ID, Username: user.Username}
	if err := a.sess.Save(ctx, sess); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "account created", "user_id", sess.ID)
	return sess, nil
}

// Resume returns the stored session after re-checking its account still
// exists in the store. A missing account clears the stale session. A
// transport failure keeps the session in place and reports no session for
// this run; the next start retries.
func (a *authService) Resume(ctx context.Context) (*models.Session, error) {
	sess, err := a.sess.Current(ctx)
	if err != nil || sess == nil {
		return nil, err
	}

	if _, err := a.client.GetUser(ctx, sess.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.log.Info(ctx, "stored session no longer matches an account, clearing", "user_id", sess.ID)
			if cerr := a.sess.Clear(ctx); cerr != nil {
				return nil, cerr
			}
			return nil, nil
		}
		return nil, nil
	}
	return sess, nil
}

// Logout clears the stored session. The remembered username survives.
func (a *authService) Logout(ctx context.Context) error {
	return a.sess.Clear(ctx)
}

// RememberedUsername exposes the login prefill value to the views.
func (a *authService) RememberedUsername(ctx context.Context) string {
	return a.sess.RememberedUsername(ctx)
}
