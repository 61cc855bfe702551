package services

import (
	"context"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/models"
	"github.com/akazakov/jobtrack/internal/client/session"
	"github.com/akazakov/jobtrack/internal/common"
	"github.com/akazakov/jobtrack/internal/logging"
)

// JobService runs every job operation under the current session.
//
// Ownership is a client-side convention, not a security boundary: the
// store serves any record to anyone, so the filter lives here. Lists are
// scoped by userId; a detail fetch of a record tagged with someone
// else's userId is refused; an untagged record (no userId at all) is
// visible to any session. Writes always stamp the record with the
// session id regardless of what the caller supplied.
type JobService interface {
	List(ctx context.Context, q client.JobQuery) ([]models.Job, error)
	Get(ctx context.Context, id models.ID) (*models.Job, error)
	Create(ctx context.Context, form models.JobForm) (*models.Job, error)
	Update(ctx context.Context, id models.ID, form models.JobForm) (*models.Job, error)
	Delete(ctx context.Context, id models.ID) error
}

type jobService struct {
	client client.Client
	sess   *session.Manager
	log    logging.Logger
}

func NewJobService(c client.Client, sess *session.Manager, log logging.Logger) JobService {
	return &jobService{client: c, sess: sess, log: log.With("component", "jobs")}
}

// requireSession loads the current session or fails with ErrAuthRequired
// before any network traffic happens.
func (s *jobService) requireSession(ctx context.Context) (*models.Session, error) {
	sess, err := s.sess.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, common.ErrAuthRequired
	}
	return sess, nil
}

// List returns the session's jobs. The caller's UserID in q is ignored
// and replaced with the session id.
func (s *jobService) List(ctx context.Context, q client.JobQuery) ([]models.Job, error) {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}
	q.UserID = sess.ID
	return s.client.ListJobs(ctx, q)
}

// Get fetches one record and applies the ownership check.
func (s *jobService) Get(ctx context.Context, id models.ID) (*models.Job, error) {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(sess.ID) {
		s.log.Warn(ctx, "refused record owned by another user", "job_id", id)
		return nil, common.ErrOwnershipDenied
	}
	return job, nil
}

// Create validates the form and stores it tagged with the session id.
func (s *jobService) Create(ctx context.Context, form models.JobForm) (*models.Job, error) {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	job := form.Job()
	uid := sess.ID
	job.UserID = &uid
	return s.client.CreateJob(ctx, job)
}

// Update replaces the record wholesale. The stored record's prior userId
// does not survive: the stamp is always the current session.
func (s *jobService) Update(ctx context.Context, id models.ID, form models.JobForm) (*models.Job, error) {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	job := form.Job()
	job.ID = id
	uid := sess.ID
	job.UserID = &uid
	return s.client.UpdateJob(ctx, id, job)
}

// Delete removes the record. Views drop the row before calling this; a
// failure here surfaces an error but never restores the row.
func (s *jobService) Delete(ctx context.Context, id models.ID) error {
	if _, err := s.requireSession(ctx); err != nil {
		return err
	}
	return s.client.DeleteJob(ctx, id)
}
