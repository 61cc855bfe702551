// Package models defines client-side data models for the jobtrack CLI.
package models

import (
	"strings"
	"time"
)

// Status classifies how far an application has progressed.
type Status string

const (
	StatusApplied     Status = "Applied"
	StatusInterviewed Status = "Interviewed"
	StatusRejected    Status = "Rejected"
)

// StatusOptions lists the accepted statuses in display order.
var StatusOptions = []Status{StatusApplied, StatusInterviewed, StatusRejected}

// Valid reports whether s is one of the fixed three statuses.
func (s Status) Valid() bool {
	for _, o := range StatusOptions {
		if s == o {
			return true
		}
	}
	return false
}

// DateLayout is the calendar-date format used by the store (ISO 8601,
// date only).
const DateLayout = "2006-01-02"

// Today returns the current date in store format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Job is one tracked application as stored remotely.
//
// UserID is optional: records created before ownership tagging carry no
// userId and are treated as unrestricted. Details is free-form text and
// may be empty.
type Job struct {
	ID          ID     `json:"id,omitempty"`
	UserID      *ID    `json:"userId,omitempty"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Status      Status `json:"status"`
	DateApplied string `json:"dateApplied"`
	Details     string `json:"details,omitempty"`
}

// OwnedBy reports whether the job may be shown under the given session id.
// A job without a userId predates ownership tagging and is visible to any
// session.
func (j *Job) OwnedBy(sessionID ID) bool {
	if j.UserID == nil || j.UserID.IsZero() {
		return true
	}
	return *j.UserID == sessionID
}

// ValidationError is a local, pre-network form error. It blocks submission
// and carries the single message shown to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// JobForm holds transient input state for the add/edit form.
type JobForm struct {
	Company     string
	Role        string
	Status      Status
	DateApplied string
	Details     string
}

// FormFromJob seeds a form from an existing record (the in-memory fast
// path on edit).
func FormFromJob(j *Job) JobForm {
	return JobForm{
		Company:     j.Company,
		Role:        j.Role,
		Status:      j.Status,
		DateApplied: j.DateApplied,
		Details:     j.Details,
	}
}

// Validate checks the form locally. It returns a *ValidationError with a
// single user-facing message on the first failed rule, or nil. No network
// access happens here or may happen after a failure.
func (f *JobForm) Validate() error {
	if strings.TrimSpace(f.Company) == "" {
		return &ValidationError{Msg: "Company name is required."}
	}
	if strings.TrimSpace(f.Role) == "" {
		return &ValidationError{Msg: "Role is required."}
	}
	if !f.Status.Valid() {
		return &ValidationError{Msg: "Status is invalid."}
	}
	if strings.TrimSpace(f.DateApplied) == "" {
		return &ValidationError{Msg: "Date applied is required."}
	}
	if _, err := time.Parse(DateLayout, f.DateApplied); err != nil {
		return &ValidationError{Msg: "Date applied must be yyyy-mm-dd."}
	}
	return nil
}

// Job converts the validated form into a record ready for the store.
// Ownership tagging is not done here; the job service overwrites userId
// with the current session before sending.
func (f *JobForm) Job() Job {
	return Job{
		Company:     strings.TrimSpace(f.Company),
		Role:        strings.TrimSpace(f.Role),
		Status:      f.Status,
		DateApplied: strings.TrimSpace(f.DateApplied),
		Details:     strings.TrimSpace(f.Details),
	}
}
