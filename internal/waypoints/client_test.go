package waypoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockEntriesResponse = `[
  {"kind":"home","name":"Base","owner":{"uuid":"u-1","name":"Steve"},"position":{"x":100.5,"y":64.0,"z":-20.0,"world":"world","server":"survival"},"description":"main base"},
  {"kind":"home","name":"Cave","owner":{"uuid":"u-1","name":"Steve"},"position":{"x":-3.0,"y":12.0,"z":88.0,"world":"world","server":"survival"}}
]`

func testUser() User {
	return User{UUID: "u-1", Name: "Steve"}
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://play.example.net:8455", "secret")

	assert.Equal(t, "http://play.example.net:8455", client.BaseURL)
	assert.Equal(t, "secret", client.Token)
	require.NotNil(t, client.HTTPClient)
	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
}

func TestSetTimeoutBoundsSlowServers(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(250 * time.Millisecond)
	}))
	defer slow.Close()

	client := NewClient(slow.URL, "")
	client.SetTimeout(20 * time.Millisecond)

	_, err := client.FetchEntries(testUser())

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
}

func TestFetchEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/u-1/homes", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(mockEntriesResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	entries, err := client.FetchEntries(testUser())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Base", entries[0].Name)
	assert.Equal(t, "main base", entries[0].Description)
	assert.Equal(t, 100.5, entries[0].Position.X)
	assert.Equal(t, "survival", entries[1].Position.Server)
}

func TestFetchEntriesMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.FetchEntries(testUser())

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindParse, apiErr.Kind)
}

func TestCreateEntry(t *testing.T) {
	var gotBody createRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"kind":"home","name":"My_Home","owner":{"uuid":"u-1","name":"Steve"},"position":{"x":1,"y":2,"z":3,"world":"world","server":"survival"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	entry, err := client.CreateEntry(testUser(), "My Home", Position{X: 1, Y: 2, Z: 3, World: "world", Server: "survival"})

	require.NoError(t, err)
	assert.Equal(t, "My_Home", gotBody.Name, "spaces should be normalized before the request")
	assert.Equal(t, "My_Home", entry.Name)
}

func TestCreateEntryRejectsLongNameLocally(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.CreateEntry(testUser(), strings.Repeat("x", 17), Position{})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, called, "a locally invalid name must never reach the store")
}

func TestCreateEntryDuplicateName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"A home called Base already exists"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.CreateEntry(testUser(), "Base", Position{})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "A home called Base already exists", UserMessage(err))
}

func TestDeleteEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/users/u-1/homes/Base", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.DeleteEntry(Entry{Kind: KindHome, Name: "Base", Owner: testUser()})

	require.NoError(t, err)
}

func TestDeleteEntryNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.DeleteEntry(Entry{Kind: KindHome, Name: "Gone", Owner: testUser()})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestMaxEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/u-1/slots", r.URL.Path)
		_, _ = w.Write([]byte(`{"max":10}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	max, err := client.MaxEntries(testUser())

	require.NoError(t, err)
	assert.Equal(t, 10, max)
}

func TestBeginTeleportRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"target world is offline"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.BeginTeleport(testUser(), Position{World: "end", Server: "events"})

	require.Error(t, err)
	assert.True(t, IsTeleport(err))
}

func TestBeginTeleportAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body teleportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u-1", body.User.UUID)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.BeginTeleport(testUser(), Position{X: 1})

	require.NoError(t, err)
}
