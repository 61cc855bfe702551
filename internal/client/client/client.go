package client

import (
	"context"
	"net/url"

	"github.com/akazakov/jobtrack/internal/client/models"
)

// SortOrder is a list sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// JobQuery describes one jobs list request. At most one sort key is
// supported (dateApplied); the default direction is descending.
type JobQuery struct {
	// Search is the free-text query matched by the store across record
	// fields.
	Search string
	// Status filters by exact status; empty means all statuses.
	Status models.Status
	// Order is the dateApplied sort direction; empty means OrderDesc.
	Order SortOrder
	// UserID scopes the list to one owner; empty means no owner filter.
	UserID models.ID
}

// Values translates the query into json-server query parameters.
func (q JobQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	v.Set("_sort", "dateApplied")
	order := q.Order
	if order == "" {
		order = OrderDesc
	}
	v.Set("_order", string(order))
	if !q.UserID.IsZero() {
		v.Set("userId", q.UserID.String())
	}
	return v
}

// Client is the record access surface consumed by the services. All read
// operations honor context cancellation: a cancelled call returns the
// context's error and must never be surfaced to the user as a store
// failure.
type Client interface {
	ListJobs(ctx context.Context, q JobQuery) ([]models.Job, error)
	GetJob(ctx context.Context, id models.ID) (*models.Job, error)
	CreateJob(ctx context.Context, job models.Job) (*models.Job, error)
	UpdateJob(ctx context.Context, id models.ID, job models.Job) (*models.Job, error)
	DeleteJob(ctx context.Context, id models.ID) error

	FindUsersByCredentials(ctx context.Context, username, password string) ([]models.User, error)
	FindUsersByUsername(ctx context.Context, username string) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id models.ID) (*models.User, error)
}
