// Package app hosts the cheat sheet in a bubbletea program.
package app

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/config"
	"github.com/chatter/shortcuts/internal/logger"
	"github.com/chatter/shortcuts/internal/render"
	"github.com/chatter/shortcuts/internal/session"
	"github.com/chatter/shortcuts/internal/ui"
	"github.com/chatter/shortcuts/internal/ui/help"
	"github.com/chatter/shortcuts/internal/watch"
)

// reloadDebounce lets editors finish writing before the file is read.
const reloadDebounce = 100 * time.Millisecond

// Options configures a Model.
type Options struct {
	Catalog    catalog.Catalog
	ConfigPath string // file to watch and reload; may not parse yet
	Watch      bool
	Logger     *logger.Logger
}

// Model is the bubbletea model of the cheat sheet.
type Model struct {
	keys KeyMap
	log  *logger.Logger

	// Catalog
	catalog    catalog.Catalog
	configPath string
	watchFile  bool
	watcher    *watch.Watcher

	// Session
	state session.State

	// Presentation
	styles       ui.Styles
	showHelp     bool
	floatingHelp *help.FloatingHelp

	// Window size
	width  int
	height int
}

// New creates a model showing opts.Catalog from the first category.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return Model{
		keys:         DefaultKeyMap(),
		log:          log,
		catalog:      opts.Catalog,
		configPath:   opts.ConfigPath,
		watchFile:    opts.Watch,
		state:        session.New(),
		styles:       ui.NewStyles(opts.Catalog.Theme),
		floatingHelp: help.NewFloatingHelp(opts.Catalog.Theme),
	}
}

// Init starts the config watcher when live reload is enabled.
func (m Model) Init() tea.Cmd {
	if !m.watchFile || m.configPath == "" {
		return nil
	}
	return m.startWatcher()
}

// startWatcher starts the file system watcher on the config file.
func (m Model) startWatcher() tea.Cmd {
	path, log := m.configPath, m.log
	return func() tea.Msg {
		watcher, err := watch.New(path, log)
		return watcherStartedMsg{watcher: watcher, err: err}
	}
}

// waitForChange blocks until the config file changes.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		time.Sleep(reloadDebounce)
		return configChangedMsg{}
	}
}

// reloadConfig parses the config file again.
func (m Model) reloadConfig() tea.Cmd {
	path := m.configPath
	return func() tea.Msg {
		cat, err := config.ParseFile(path)
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

// Message types
type watcherStartedMsg struct {
	watcher *watch.Watcher
	err     error
}

type configChangedMsg struct{}

type catalogLoadedMsg struct {
	catalog catalog.Catalog
	err     error
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		m.paste(msg.Content)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case watcherStartedMsg:
		if msg.err != nil {
			// Live reload is optional; keep running without it.
			m.log.Warn("config watcher unavailable", "path", m.configPath, "err", msg.err)
			return m, nil
		}
		m.watcher = msg.watcher
		return m, m.waitForChange()

	case configChangedMsg:
		m.log.Debug("config changed", "path", m.configPath)
		return m, tea.Batch(m.reloadConfig(), m.waitForChange())

	case catalogLoadedMsg:
		cat := msg.catalog
		if msg.err != nil {
			m.log.Warn("reload failed, using built-in catalog", "path", m.configPath, "err", msg.err)
			cat = catalog.Default()
		} else {
			m.log.Info("config reloaded", "path", m.configPath, "categories", cat.Len())
		}
		m.setCatalog(cat)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// While the overlay is open it absorbs every key but its own.
	if m.showHelp {
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.actionQuit()
		}
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	if newModel, cmd := dispatchKey(&m, msg, m.priorityBindings()); newModel != nil {
		return *newModel, cmd
	}

	st, outcome := m.state.Handle(m.catalog, keyEvent(msg))
	m.state = st

	switch outcome {
	case session.Close:
		m.log.Info("closing", "tab", m.state.ActiveTab)
		return m.actionQuit()
	case session.Ignored:
		if newModel, cmd := dispatchKey(&m, msg, m.fallbackBindings()); newModel != nil {
			return *newModel, cmd
		}
	}

	return m, nil
}

// paste types text into the search query. Outside search it is dropped so
// pasted text never navigates or quits.
func (m *Model) paste(text string) {
	if m.showHelp || !m.state.Searching {
		return
	}
	for _, r := range text {
		m.state, _ = m.state.Handle(m.catalog, session.Char(r))
	}
}

// setCatalog swaps in a new catalog and keeps the state valid for it.
func (m *Model) setCatalog(cat catalog.Catalog) {
	m.catalog = cat
	m.state = m.state.Clamp(cat.Len())
	m.styles = ui.NewStyles(cat.Theme)
	m.floatingHelp = help.NewFloatingHelp(cat.Theme)
}

// Action methods for keybindings

func (m *Model) actionQuit() (Model, tea.Cmd) {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.log.Warn("closing watcher", "err", err)
		}
	}
	return *m, tea.Quit
}

func (m *Model) actionToggleHelp() (Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return *m, nil
}

// priorityBindings run before the session sees the key.
func (m *Model) priorityBindings() []ActionBinding {
	return []ActionBinding{
		{
			Binding: help.Binding{Key: m.keys.ForceQuit, Category: help.CategoryGeneral, Order: 2},
			Action:  (*Model).actionQuit,
		},
	}
}

// fallbackBindings run only for keys the session ignored.
func (m *Model) fallbackBindings() []ActionBinding {
	return []ActionBinding{
		{
			Binding: help.Binding{Key: m.keys.Help, Category: help.CategoryGeneral, Order: 3},
			Action:  (*Model).actionToggleHelp,
		},
	}
}

// sessionBindings are handled by the session; they are listed for display only.
func (m *Model) sessionBindings() []ActionBinding {
	return []ActionBinding{
		{Binding: help.Binding{Key: m.keys.NextTab, Category: help.CategoryNavigation, Order: 0}},
		{Binding: help.Binding{Key: m.keys.PrevTab, Category: help.CategoryNavigation, Order: 1}},
		{Binding: help.Binding{Key: m.keys.Jump, Category: help.CategoryNavigation, Order: 2}},
		{Binding: help.Binding{Key: m.keys.Search, Category: help.CategorySearch, Order: 0}},
		{Binding: help.Binding{Key: m.keys.Backspace, Category: help.CategorySearch, Order: 1}},
		{Binding: help.Binding{Key: m.keys.Escape, Category: help.CategorySearch, Order: 2}},
		{Binding: help.Binding{Key: m.keys.Quit, Category: help.CategoryGeneral, Order: 0}},
	}
}

// helpBindings returns every binding shown in the overlay.
func (m *Model) helpBindings() []help.Binding {
	all := append(m.sessionBindings(), m.priorityBindings()...)
	all = append(all, m.fallbackBindings()...)
	return ToHelpBindings(all)
}

// View renders the cheat sheet.
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.content())
	return v
}

// content returns the styled text of the current screen.
func (m Model) content() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	vp := render.Viewport{Rows: m.height, Cols: m.width}
	return ui.Frame(m.catalog, m.state, vp, m.styles)
}

func (m Model) renderHelp() string {
	// Centered, about 80% of the screen.
	modalWidth := m.width * 80 / 100
	modalHeight := m.height * 70 / 100

	if modalWidth < 40 {
		modalWidth = min(40, m.width-4)
	}
	if modalHeight < 10 {
		modalHeight = min(10, m.height-4)
	}

	m.floatingHelp.SetSize(modalWidth, modalHeight)
	m.floatingHelp.SetBindings(m.helpBindings())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.floatingHelp.View(),
	)
}
