package devstore

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akazakov/jobtrack/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, store *Store) *httptest.Server {
	t.Helper()
	svc := NewService(store, logging.NewJSON(io.Discard, slog.LevelInfo))
	srv := httptest.NewServer(svc.Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListWithFiltersAndSort(t *testing.T) {
	store := NewStore()
	store.Seed("jobs",
		Record{"id": "1", "userId": "7", "status": "Interviewed", "dateApplied": "2024-03-10", "company": "Acme"},
		Record{"id": "2", "userId": "7", "status": "Interviewed", "dateApplied": "2024-01-05", "company": "Globex"},
		Record{"id": "3", "userId": "7", "status": "Applied", "dateApplied": "2024-02-01", "company": "Initech"},
	)
	srv := newTestServer(t, store)

	var jobs []Record
	status := getJSON(t, srv.URL+"/jobs?userId=7&status=Interviewed&_sort=dateApplied&_order=asc", &jobs)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, jobs, 2)
	assert.Equal(t, "2024-01-05", jobs[0]["dateApplied"])
	assert.Equal(t, "2024-03-10", jobs[1]["dateApplied"])
}

func TestGetMissingReturns404(t *testing.T) {
	srv := newTestServer(t, NewStore())

	status := getJSON(t, srv.URL+"/jobs/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateThenGet(t *testing.T) {
	srv := newTestServer(t, NewStore())

	body, _ := json.Marshal(Record{"company": "Acme", "role": "Engineer"})
	resp, err := http.Post(srv.URL+"/jobs", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	require.NotEmpty(t, saved["id"])

	var got Record
	status := getJSON(t, srv.URL+"/jobs/"+saved["id"].(string), &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme", got["company"])
}

func TestPutReplacesRecord(t *testing.T) {
	store := NewStore()
	store.Seed("jobs", Record{"id": "1", "company": "Acme", "role": "Engineer"})
	srv := newTestServer(t, store)

	body, _ := json.Marshal(Record{"company": "Acme v2"})
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/jobs/1", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got Record
	getJSON(t, srv.URL+"/jobs/1", &got)
	assert.Equal(t, "Acme v2", got["company"])
	_, hasRole := got["role"]
	assert.False(t, hasRole)
}

func TestDeleteEndpoint(t *testing.T) {
	store := NewStore()
	store.Seed("jobs", Record{"id": "1", "company": "Acme"})
	srv := newTestServer(t, store)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/jobs/1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/jobs/1", nil))
}
