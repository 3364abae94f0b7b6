package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"homeport/internal/discovery"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func testServers() []*discovery.Server {
	return []*discovery.Server{
		{
			Name:         "survival",
			Hostname:     "mc-host.local.",
			IP:           "192.168.1.10",
			Port:         8455,
			Metadata:     map[string]string{"auth": "bearer"},
			DiscoveredAt: time.Now(),
		},
		{
			Name:         "creative",
			Hostname:     "mc-host.local.",
			IP:           "192.168.1.11",
			Port:         8455,
			DiscoveredAt: time.Now(),
		},
	}
}

func newTestModel(servers []*discovery.Server, saveErr error, saved *Result) SetupModel {
	m := NewSetupModel()
	m.Scan = func() tea.Msg {
		return scanCompleteMsg{servers: servers}
	}
	m.Save = func(endpoint, token string) error {
		if saveErr != nil {
			return saveErr
		}
		*saved = Result{Endpoint: endpoint, Token: token, Saved: true}
		return nil
	}
	m.Width = 80
	m.Height = 24
	return m
}

func update(t *testing.T, m SetupModel, msg tea.Msg) (SetupModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(SetupModel)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func TestScanCompletePopulatesList(t *testing.T) {
	var saved Result
	m := newTestModel(testServers(), nil, &saved)

	m, _ = update(t, m, m.Scan())

	if m.Phase != PhaseResults {
		t.Fatalf("Phase = %v, want PhaseResults", m.Phase)
	}
	if got := len(m.ServerList.Items()); got != 2 {
		t.Errorf("list has %d items, want 2", got)
	}
}

func TestSelectServerThenTokenThenSave(t *testing.T) {
	var saved Result
	m := newTestModel(testServers(), nil, &saved)
	m, _ = update(t, m, m.Scan())

	m, _ = update(t, m, keyMsg("enter"))
	if m.Phase != PhaseToken {
		t.Fatalf("Phase = %v, want PhaseToken", m.Phase)
	}
	if m.Endpoint != "http://192.168.1.10:8455" {
		t.Errorf("Endpoint = %q", m.Endpoint)
	}

	for _, r := range "hunter2" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	var cmd tea.Cmd
	m, cmd = update(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter on token phase should return a save command")
	}
	m, _ = update(t, m, cmd())

	if m.Phase != PhaseDone {
		t.Fatalf("Phase = %v, want PhaseDone", m.Phase)
	}
	if !saved.Saved || saved.Endpoint != "http://192.168.1.10:8455" || saved.Token != "hunter2" {
		t.Errorf("saved = %+v", saved)
	}
	if !m.Result.Saved {
		t.Error("Result.Saved should be true")
	}
}

func TestManualEntryDefaultsScheme(t *testing.T) {
	var saved Result
	m := newTestModel(nil, nil, &saved)
	m, _ = update(t, m, m.Scan())

	m, _ = update(t, m, keyMsg("m"))
	if m.Phase != PhaseManual {
		t.Fatalf("Phase = %v, want PhaseManual", m.Phase)
	}

	for _, r := range "10.0.0.5:8455" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = update(t, m, keyMsg("enter"))

	if m.Phase != PhaseToken {
		t.Fatalf("Phase = %v, want PhaseToken", m.Phase)
	}
	if m.Endpoint != "http://10.0.0.5:8455" {
		t.Errorf("Endpoint = %q, want scheme prefixed", m.Endpoint)
	}
}

func TestEscFromTokenReturnsToResults(t *testing.T) {
	var saved Result
	m := newTestModel(testServers(), nil, &saved)
	m, _ = update(t, m, m.Scan())
	m, _ = update(t, m, keyMsg("enter"))

	m, _ = update(t, m, keyMsg("esc"))
	if m.Phase != PhaseResults {
		t.Errorf("Phase = %v, want PhaseResults", m.Phase)
	}
}

func TestSaveFailureShowsError(t *testing.T) {
	var saved Result
	m := newTestModel(testServers(), errors.New("disk full"), &saved)
	m, _ = update(t, m, m.Scan())
	m, _ = update(t, m, keyMsg("enter"))

	var cmd tea.Cmd
	m, cmd = update(t, m, keyMsg("enter"))
	m, _ = update(t, m, cmd())

	if m.Phase != PhaseDone {
		t.Fatalf("Phase = %v, want PhaseDone", m.Phase)
	}
	if m.Err == nil || m.Result.Saved {
		t.Errorf("save failure should surface: err=%v saved=%v", m.Err, m.Result.Saved)
	}
}

func TestEmptyScanShowsHints(t *testing.T) {
	var saved Result
	m := newTestModel(nil, nil, &saved)
	m, _ = update(t, m, m.Scan())

	view := m.View()
	if m.Phase != PhaseResults {
		t.Fatalf("Phase = %v, want PhaseResults", m.Phase)
	}
	if view == "" {
		t.Fatal("empty view")
	}
}
