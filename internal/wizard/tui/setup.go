package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"homeport/internal/config"
	"homeport/internal/discovery"
)

// Phase is the current setup step.
type Phase int

const (
	// PhaseScanning is the initial network scan
	PhaseScanning Phase = iota
	// PhaseResults shows discovered servers for selection
	PhaseResults
	// PhaseManual is manual address entry
	PhaseManual
	// PhaseToken asks for an access token
	PhaseToken
	// PhaseDone shows the save outcome
	PhaseDone
)

// Result is what the wizard produced.
type Result struct {
	Endpoint string
	Token    string
	Saved    bool
}

// Messages for async operations
type scanStartMsg struct{}
type scanCompleteMsg struct {
	servers []*discovery.Server
	err     error
}
type saveCompleteMsg struct {
	err error
}

// resultsKeyMap defines key bindings for the server list screen
type resultsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Rescan key.Binding
	Manual key.Binding
	Quit   key.Binding
}

func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Rescan, k.Manual, k.Quit}
}

func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Rescan, k.Manual, k.Quit},
	}
}

// inputKeyMap defines key bindings for the text entry phases
type inputKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

// serverItem wraps a discovered server for use with bubbles/list
type serverItem struct {
	server *discovery.Server
}

func (s serverItem) FilterValue() string {
	return s.server.Name + " " + s.server.IP + " " + s.server.Hostname
}

func (s serverItem) Title() string {
	return s.server.Name
}

func (s serverItem) Description() string {
	auth := "open"
	if s.server.RequiresAuth() {
		auth = "token required"
	}
	return fmt.Sprintf("%s • %s", s.server.BaseURL(), auth)
}

// serverDelegate renders discovered servers as cards
type serverDelegate struct {
	width int
}

func (d serverDelegate) Height() int { return 7 }

func (d serverDelegate) Spacing() int { return 1 }

func (d serverDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d serverDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(serverItem)
	if !ok {
		return
	}

	server := si.server
	selected := index == m.Index()

	auth := "none"
	if server.RequiresAuth() {
		auth = server.GetMetadata("auth")
	}

	var content strings.Builder
	if selected {
		content.WriteString(SelectedItemStyle.Render("→ " + server.Name))
	} else {
		content.WriteString("  " + server.Name)
	}
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("  Address: %s\n", server.BaseURL()))
	content.WriteString(fmt.Sprintf("  Host:    %s\n", server.Hostname))
	content.WriteString(fmt.Sprintf("  Auth:    %s", auth))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2).
		MarginLeft(2)

	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}
	cardStyle = cardStyle.Width(cardWidth)

	if selected {
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// SetupModel is the first-run wizard: scan the LAN for a waypoint server,
// pick one (or enter an address), optionally record a token, and save it all
// to the settings file.
type SetupModel struct {
	Phase      Phase
	ServerList list.Model
	Endpoint   string
	Err        error

	AddressInput textinput.Model
	TokenInput   textinput.Model

	Width         int
	Height        int
	Spinner       spinner.Model
	ProgressBar   progress.Model
	ScanStartTime time.Time
	Help          help.Model
	ResultKeys    resultsKeyMap
	InputKeys     inputKeyMap

	// Scan performs the network scan; swapped in tests.
	Scan func() tea.Msg

	// Save persists the chosen endpoint and token; swapped in tests.
	Save func(endpoint, token string) error

	Result Result
}

// NewSetupModel creates the wizard in its scanning phase.
func NewSetupModel() SetupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	addressInput := textinput.New()
	addressInput.Placeholder = "http://192.168.1.10:8455"
	addressInput.Width = 40

	tokenInput := textinput.New()
	tokenInput.Placeholder = "leave empty for open servers"
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.Width = 40

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = 40

	delegate := serverDelegate{width: MinTerminalWidth}
	serverList := list.New([]list.Item{}, delegate, 0, 0)
	serverList.Title = "Discovered Servers"
	serverList.SetShowStatusBar(false)
	serverList.SetFilteringEnabled(true)
	serverList.Styles.Title = TitleStyle

	resultKeys := resultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual address"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	inputKeys := inputKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}

	return SetupModel{
		Phase:        PhaseScanning,
		ServerList:   serverList,
		AddressInput: addressInput,
		TokenInput:   tokenInput,
		Spinner:      s,
		ProgressBar:  progressBar,
		Help:         help.New(),
		ResultKeys:   resultKeys,
		InputKeys:    inputKeys,
		Scan:         scanServers,
		Save:         saveSettings,
	}
}

// Init starts the scan immediately.
func (m SetupModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return scanStartMsg{} },
		m.Scan,
		m.Spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.Phase {
		case PhaseManual:
			return m.updateManual(msg)
		case PhaseToken:
			return m.updateToken(msg)
		case PhaseDone:
			return m, tea.Quit
		default:
			return m.updateResults(msg)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ServerList.SetWidth(msg.Width - 4)
		m.ServerList.SetHeight(msg.Height - 10)

	case scanStartMsg:
		m.Phase = PhaseScanning
		m.ScanStartTime = time.Now()

	case scanCompleteMsg:
		m.Phase = PhaseResults
		m.Err = msg.err
		items := make([]list.Item, len(msg.servers))
		for i, server := range msg.servers {
			items[i] = serverItem{server: server}
		}
		m.ServerList.SetItems(items)

	case saveCompleteMsg:
		m.Phase = PhaseDone
		m.Err = msg.err
		m.Result.Saved = msg.err == nil

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	if m.Phase == PhaseResults {
		m.ServerList, cmd = m.ServerList.Update(msg)
	}
	return m, cmd
}

func (m SetupModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter":
		if m.Phase != PhaseResults {
			return m, nil
		}
		if item, ok := m.ServerList.SelectedItem().(serverItem); ok {
			m.Endpoint = item.server.BaseURL()
			return m.enterTokenPhase(), nil
		}
		return m, nil

	case "r":
		if m.Phase != PhaseResults {
			return m, nil
		}
		m.ServerList.SetItems([]list.Item{})
		m.Err = nil
		return m, tea.Batch(
			func() tea.Msg { return scanStartMsg{} },
			m.Scan,
			m.Spinner.Tick,
		)

	case "m":
		m.Phase = PhaseManual
		m.AddressInput.SetValue("")
		m.AddressInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.Phase == PhaseResults {
		m.ServerList, cmd = m.ServerList.Update(msg)
	}
	return m, cmd
}

func (m SetupModel) updateManual(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.Phase = PhaseResults
		m.AddressInput.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.AddressInput.Value())
		if value == "" {
			return m, nil
		}
		if !strings.Contains(value, "://") {
			value = "http://" + value
		}
		m.Endpoint = value
		m.AddressInput.Blur()
		return m.enterTokenPhase(), nil
	}

	var cmd tea.Cmd
	m.AddressInput, cmd = m.AddressInput.Update(msg)
	return m, cmd
}

func (m SetupModel) updateToken(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.Phase = PhaseResults
		m.TokenInput.Blur()
		return m, nil

	case "enter":
		m.Result.Endpoint = m.Endpoint
		m.Result.Token = m.TokenInput.Value()
		m.TokenInput.Blur()
		save := m.Save
		endpoint, token := m.Result.Endpoint, m.Result.Token
		return m, func() tea.Msg {
			return saveCompleteMsg{err: save(endpoint, token)}
		}
	}

	var cmd tea.Cmd
	m.TokenInput, cmd = m.TokenInput.Update(msg)
	return m, cmd
}

func (m SetupModel) enterTokenPhase() SetupModel {
	m.Phase = PhaseToken
	m.TokenInput.SetValue("")
	m.TokenInput.Focus()
	return m
}

// View renders the current setup phase
func (m SetupModel) View() string {
	width := m.Width
	if width == 0 {
		width = MinTerminalWidth
	}

	var content, helpText string
	switch m.Phase {
	case PhaseScanning:
		content = m.renderScanning(width)
		helpText = "q quit"
	case PhaseManual:
		content = m.renderManual()
		helpText = m.Help.View(m.InputKeys)
	case PhaseToken:
		content = m.renderToken()
		helpText = m.Help.View(m.InputKeys)
	case PhaseDone:
		content = m.renderDone()
		helpText = "press any key to exit"
	default:
		content = m.renderResults()
		helpText = m.Help.View(m.ResultKeys)
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

func (m SetupModel) renderScanning(width int) string {
	elapsed := time.Since(m.ScanStartTime)
	elapsedSec := int(elapsed.Seconds())

	progressPercent := (elapsedSec * 100) / 10
	if progressPercent > 100 {
		progressPercent = 100
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		TitleStyle.Render(fmt.Sprintf("%s SEARCHING FOR SERVERS", m.Spinner.View())),
		"",
		SubtitleStyle.Render("Scanning your network for waypoint servers..."),
		"",
		m.ProgressBar.ViewAs(float64(progressPercent)/100.0),
		"",
		SubtitleStyle.Render(fmt.Sprintf("Elapsed: %ds", elapsedSec)),
		"",
	)

	return lipgloss.Place(width, 0, lipgloss.Center, lipgloss.Top, content)
}

func (m SetupModel) renderResults() string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case m.Err != nil:
		b.WriteString(RenderError(fmt.Sprintf("Scan failed: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(m.renderHints())

	case len(m.ServerList.Items()) == 0:
		warningStyle := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
		b.WriteString("  ")
		b.WriteString(warningStyle.Render("⚠ No waypoint servers found on your network"))
		b.WriteString("\n\n")
		b.WriteString(m.renderHints())

	default:
		b.WriteString(m.ServerList.View())
	}

	return b.String()
}

func (m SetupModel) renderHints() string {
	var b strings.Builder
	b.WriteString("  Troubleshooting:\n")
	b.WriteString("    • Check you are on the same network as the server\n")
	b.WriteString("    • The server must announce itself over mDNS\n")
	b.WriteString("    • Press 'm' to enter the address manually\n")
	b.WriteString("    • Press 'r' to rescan\n")
	return b.String()
}

func (m SetupModel) renderManual() string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Enter the server address"))
	b.WriteString("\n\n")
	b.WriteString("  Address: ")
	b.WriteString(m.AddressInput.View())
	b.WriteString("\n\n")
	return b.String()
}

func (m SetupModel) renderToken() string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Server: %s", m.Endpoint)))
	b.WriteString("\n\n")
	b.WriteString("  Access token: ")
	b.WriteString(m.TokenInput.View())
	b.WriteString("\n\n")
	return b.String()
}

func (m SetupModel) renderDone() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.Err != nil {
		b.WriteString(RenderError(fmt.Sprintf("Failed to save settings: %v", m.Err)))
	} else {
		path, _ := config.GetConfigPath()
		b.WriteString(RenderSuccess(fmt.Sprintf("Saved %s to %s", m.Result.Endpoint, path)))
	}
	b.WriteString("\n")
	return b.String()
}

// scanServers performs the real network scan.
func scanServers() tea.Msg {
	scanner := discovery.NewScanner()
	servers, err := scanner.ScanForServers()
	return scanCompleteMsg{servers: servers, err: err}
}

// saveSettings writes the chosen server into the settings file.
func saveSettings(endpoint, token string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		registry = config.NewRegistry()
	}
	if registry.Server == nil {
		registry.Server = &config.ServerConf{}
	}
	registry.Server.Endpoint = endpoint
	registry.Server.Token = token
	return registry.Save()
}
