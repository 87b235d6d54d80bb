package sheets_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/sheets"
)

func TestPushSendsSyncActionAndSnapshot(t *testing.T) {
	var received sheets.SyncPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"status":"success","message":"ok","recordCount":{"orders":2,"staffBook":1,"entryStatuses":0}}`))
	}))
	defer srv.Close()

	client := sheets.NewClient(srv.URL)
	result, err := client.Push(sheets.SyncPayload{
		Orders: []models.Order{{Sno: "101"}, {Sno: "102"}},
		StaffBook: []models.StaffBookEntry{
			{BillbookRange: "100-200", StaffName: "Amit"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "sync", received.Action)
	assert.Len(t, received.Orders, 2)
	assert.Len(t, received.StaffBook, 1)

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 2, result.RecordCount.Orders)
	assert.Equal(t, 1, result.RecordCount.StaffBook)
}

func TestPushRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := sheets.NewClient(srv.URL)
	_, err := client.Push(sheets.SyncPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestPushRejectsErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"sheet locked"}`))
	}))
	defer srv.Close()

	client := sheets.NewClient(srv.URL)
	_, err := client.Push(sheets.SyncPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet locked")
}

func TestConfigured(t *testing.T) {
	assert.True(t, sheets.NewClient("https://script.example.com/exec").Configured())
	assert.False(t, sheets.NewClient("").Configured())
}
