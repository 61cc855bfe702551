package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/client/session"
	"github.com/akazakov/jobtrack/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewJSON(io.Discard, slog.LevelError)
}

func setupSession(t *testing.T) *session.Manager {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := session.OpenStore(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewManager(db)
}

func loggedIn(t *testing.T, sess *session.Manager, id models.ID) *models.Session {
	t.Helper()
	s := &models.Session{ID: id, Username: "a@x.com"}
	require.NoError(t, sess.Save(context.Background(), s))
	return s
}

// ---- fake client ----

// fakeClient implements client.Client for service unit tests. Call
// counters and last-seen arguments let tests assert which requests were
// (and were not) made.
type fakeClient struct {
	ListJobsRet []models.Job
	ListJobsErr error
	LastQuery   client.JobQuery
	ListCalls   int

	GetJobRet *models.Job
	GetJobErr error
	LastGetID models.ID

	CreateJobErr  error
	LastCreated   models.Job
	CreateCalls   int
	UpdateJobErr  error
	LastUpdated   models.Job
	LastUpdateID  models.ID
	UpdateCalls   int
	DeleteJobErr  error
	LastDeletedID models.ID
	DeleteCalls   int

	FindByCredsRet   []models.User
	FindByCredsErr   error
	LastCredUsername string
	LastCredPassword string
	CredCalls        int

	FindByNameRet []models.User
	FindByNameErr error

	CreateUserRet   *models.User
	CreateUserErr   error
	LastCreatedUser models.User
	CreateUserCalls int

	GetUserRet *models.User
	GetUserErr error
}

func (f *fakeClient) ListJobs(ctx context.Context, q client.JobQuery) ([]models.Job, error) {
	f.ListCalls++
	f.LastQuery = q
	return f.ListJobsRet, f.ListJobsErr
}

func (f *fakeClient) GetJob(ctx context.Context, id models.ID) (*models.Job, error) {
	f.LastGetID = id
	return f.GetJobRet, f.GetJobErr
}

func (f *fakeClient) CreateJob(ctx context.Context, job models.Job) (*models.Job, error) {
	f.CreateCalls++
	f.LastCreated = job
	if f.CreateJobErr != nil {
		return nil, f.CreateJobErr
	}
	saved := job
	saved.ID = "new-id"
	return &saved, nil
}

func (f *fakeClient) UpdateJob(ctx context.Context, id models.ID, job models.Job) (*models.Job, error) {
	f.UpdateCalls++
	f.LastUpdateID = id
	f.LastUpdated = job
	if f.UpdateJobErr != nil {
		return nil, f.UpdateJobErr
	}
	saved := job
	return &saved, nil
}

func (f *fakeClient) DeleteJob(ctx context.Context, id models.ID) error {
	f.DeleteCalls++
	f.LastDeletedID = id
	return f.DeleteJobErr
}

func (f *fakeClient) FindUsersByCredentials(ctx context.Context, username, password string) ([]models.User, error) {
	f.CredCalls++
	f.LastCredUsername = username
	f.LastCredPassword = password
	return f.FindByCredsRet, f.FindByCredsErr
}

func (f *fakeClient) FindUsersByUsername(ctx context.Context, username string) ([]models.User, error) {
	return f.FindByNameRet, f.FindByNameErr
}

func (f *fakeClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	f.CreateUserCalls++
	f.LastCreatedUser = user
	return f.CreateUserRet, f.CreateUserErr
}

func (f *fakeClient) GetUser(ctx context.Context, id models.ID) (*models.User, error) {
	return f.GetUserRet, f.GetUserErr
}
