package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON_AcceptsStringAndNumber(t *testing.T) {
	var j Job
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","userId":42}`), &j))
	assert.Equal(t, ID("7"), j.ID)
	require.NotNil(t, j.UserID)
	assert.Equal(t, ID("42"), *j.UserID)
}

func TestID_MarshalJSON_AlwaysString(t *testing.T) {
	b, err := json.Marshal(Job{ID: "15", Company: "Acme"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":"15"`)
}

func TestJob_OwnedBy(t *testing.T) {
	uid := ID("7")

	owned := Job{UserID: &uid}
	assert.True(t, owned.OwnedBy("7"))
	assert.False(t, owned.OwnedBy("8"))

	// Records that predate ownership tagging are unrestricted.
	legacy := Job{}
	assert.True(t, legacy.OwnedBy("7"))
	assert.True(t, legacy.OwnedBy(""))
}

func TestJob_OwnedBy_NumericIDFromStore(t *testing.T) {
	var j Job
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"userId":7}`), &j))
	assert.True(t, j.OwnedBy("7"))
	assert.False(t, j.OwnedBy("70"))
}

func TestJobForm_Validate(t *testing.T) {
	valid := JobForm{
		Company:     "Acme Inc.",
		Role:        "Frontend Engineer",
		Status:      StatusApplied,
		DateApplied: "2024-01-05",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(f *JobForm)
		msg    string
	}{
		{"empty company", func(f *JobForm) { f.Company = "  " }, "Company name is required."},
		{"empty role", func(f *JobForm) { f.Role = "" }, "Role is required."},
		{"unknown status", func(f *JobForm) { f.Status = "Ghosted" }, "Status is invalid."},
		{"empty date", func(f *JobForm) { f.DateApplied = "" }, "Date applied is required."},
		{"bad date", func(f *JobForm) { f.DateApplied = "05.01.2024" }, "Date applied must be yyyy-mm-dd."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			err := f.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.msg, verr.Msg)
		})
	}
}

func TestJobForm_Job_TrimsFields(t *testing.T) {
	f := JobForm{
		Company:     " Acme ",
		Role:        " Engineer ",
		Status:      StatusInterviewed,
		DateApplied: "2024-03-10",
		Details:     " remote ok ",
	}
	j := f.Job()
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "Engineer", j.Role)
	assert.Equal(t, "remote ok", j.Details)
	assert.True(t, j.ID.IsZero())
	assert.Nil(t, j.UserID)
}

func TestToday_StoreFormat(t *testing.T) {
	_, err := time.Parse(DateLayout, Today())
	require.NoError(t, err)
}
