package server

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeport/internal/waypoints"
)

// newTestServer wires a store and hub behind httptest and returns a real
// client pointed at it.
func newTestServer(t *testing.T, token string) (*Store, *Hub, *waypoints.Client) {
	t.Helper()
	store := NewStore()
	hub := NewHub()
	store.OnChange(hub.EntriesChanged)

	ts := httptest.NewServer(newHandler(store, hub, token))
	t.Cleanup(ts.Close)
	t.Cleanup(hub.Close)

	return store, hub, waypoints.NewClient(ts.URL, token)
}

func TestClientRoundTrip(t *testing.T) {
	_, _, client := newTestServer(t, "")
	owner := waypoints.User{UUID: "u-1", Name: "Steve"}

	entry, err := client.CreateEntry(owner, "Base", pos())
	require.NoError(t, err)
	assert.Equal(t, "Base", entry.Name)

	entries, err := client.FetchEntries(owner)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, waypoints.KindHome, entries[0].Kind)
	assert.Equal(t, "u-1", entries[0].Owner.UUID)

	max, err := client.MaxEntries(owner)
	require.NoError(t, err)
	assert.Equal(t, DefaultSlots, max)

	require.NoError(t, client.DeleteEntry(entries[0]))

	entries, err = client.FetchEntries(owner)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDuplicateCreateSurfacesServerWording(t *testing.T) {
	_, _, client := newTestServer(t, "")
	owner := waypoints.User{UUID: "u-1"}

	_, err := client.CreateEntry(owner, "Base", pos())
	require.NoError(t, err)

	_, err = client.CreateEntry(owner, "Base", pos())
	require.Error(t, err)
	assert.True(t, waypoints.IsValidation(err))
	assert.Equal(t, "A home named Base already exists", waypoints.UserMessage(err))
}

func TestWarpsAndPublicRoutes(t *testing.T) {
	store, _, client := newTestServer(t, "")
	_, err := store.AddWarp("Spawn", pos(), "The spawn point")
	require.NoError(t, err)

	owner := waypoints.User{UUID: "u-1"}
	_, err = client.CreateEntry(owner, "Shared", pos())
	require.NoError(t, err)
	require.NoError(t, store.SetPublic("u-1", "Shared", true))

	warps, err := client.FetchWarps()
	require.NoError(t, err)
	require.Len(t, warps, 1)
	assert.Equal(t, "Spawn", warps[0].Name)

	public, err := client.FetchPublicEntries()
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Shared", public[0].Name)
}

func TestTeleportAccepted(t *testing.T) {
	_, _, client := newTestServer(t, "")
	err := client.BeginTeleport(waypoints.User{UUID: "u-1", Name: "Steve"}, pos())
	assert.NoError(t, err)
}

func TestTokenRequired(t *testing.T) {
	store := NewStore()
	hub := NewHub()
	ts := httptest.NewServer(newHandler(store, hub, "secret"))
	t.Cleanup(ts.Close)

	bad := waypoints.NewClient(ts.URL, "wrong")
	_, err := bad.FetchEntries(waypoints.User{UUID: "u-1"})
	require.Error(t, err)

	good := waypoints.NewClient(ts.URL, "secret")
	entries, err := good.FetchEntries(waypoints.User{UUID: "u-1"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestWatcherReceivesChangeEvents drives the full push path: the watcher
// dials the feed, a store mutation broadcasts, the event arrives typed.
func TestWatcherReceivesChangeEvents(t *testing.T) {
	store := NewStore()
	hub := NewHub()
	store.OnChange(hub.EntriesChanged)
	ts := httptest.NewServer(newHandler(store, hub, ""))
	t.Cleanup(ts.Close)
	t.Cleanup(hub.Close)

	watcher, err := waypoints.NewWatcher(ts.URL, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	// Wait for the subscription before mutating.
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("watcher never subscribed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	_, err = store.CreateHome(waypoints.User{UUID: "u-1"}, "Base", pos())
	require.NoError(t, err)

	select {
	case event := <-watcher.Events():
		assert.Equal(t, "entries_changed", event.Type)
		assert.Equal(t, "u-1", event.OwnerUUID)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event delivered")
	}
}
