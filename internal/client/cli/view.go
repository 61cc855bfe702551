package cli

import (
	"context"
	"errors"
	"sync"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/models"
)

// ViewState is the lifecycle phase of the jobs list view.
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateSuccess
	StateError
)

// ListView owns the displayed rows of the jobs list and serializes
// fetches against them.
//
// Rules:
//   - starting a fetch cancels the previous in-flight fetch;
//   - only the most recently issued fetch may commit its result; a
//     superseded or cancelled fetch is dropped silently;
//   - a successful fetch replaces the rows wholesale; a failed fetch
//     clears them and records a single user-facing message;
//   - RemoveRow drops a row immediately, ahead of the delete round trip.
type ListView struct {
	mu      sync.Mutex
	state   ViewState
	rows    []models.Job
	message string
	gen     uint64
	cancel  context.CancelFunc
	fetch   func(ctx context.Context, q client.JobQuery) ([]models.Job, error)
}

func NewListView(fetch func(ctx context.Context, q client.JobQuery) ([]models.Job, error)) *ListView {
	return &ListView{fetch: fetch}
}

// Refresh runs one fetch for q. It returns the fetch error, or nil when
// the fetch succeeded or was superseded by a newer one.
func (v *ListView) Refresh(ctx context.Context, q client.JobQuery) error {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.gen++
	gen := v.gen
	v.state = StateLoading
	v.mu.Unlock()

	rows, err := v.fetch(fctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		// A newer fetch owns the view now.
		cancel()
		return nil
	}
	cancel()
	v.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		v.state = StateError
		v.rows = nil
		v.message = userMessage(err)
		return err
	}
	v.state = StateSuccess
	v.rows = rows
	v.message = ""
	return nil
}

// State returns the current phase and, in StateError, the message.
func (v *ListView) State() (ViewState, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.message
}

// Rows returns a copy of the displayed rows.
func (v *ListView) Rows() []models.Job {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Job(nil), v.rows...)
}

// Find returns the displayed row with the given id, when present. This
// is the in-memory fast path for edit.
func (v *ListView) Find(id models.ID) (*models.Job, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].ID == id {
			job := v.rows[i]
			return &job, true
		}
	}
	return nil, false
}

// RemoveRow drops the row with the given id from the displayed list.
// The caller issues the delete afterwards; a failed delete does not
// restore the row.
func (v *ListView) RemoveRow(id models.ID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].ID == id {
			v.rows = append(v.rows[:i:i], v.rows[i+1:]...)
			return
		}
	}
}

// Reset returns the view to Idle with no rows, e.g. on logout.
func (v *ListView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.state = StateIdle
	v.rows = nil
	v.message = ""
}
