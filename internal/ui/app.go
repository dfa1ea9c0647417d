package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/config"
	"github.com/five82/rowbind/internal/prefs"
	"github.com/five82/rowbind/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	c        *controller

	// Footer message
	status      string
	statusUntil time.Time
}

// New creates a new Bubble Tea model and binds the list behaviors. A saved
// selection for the configured choice mode is restored.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	c, err := newController(opts.Config, minListRows)
	if err != nil {
		return Model{}, err
	}
	var snap state.Snapshot
	if opts.Store != nil {
		snap = opts.Store.Snapshot()
		if snap.Loaded {
			c.swap(snap.Items, snap.Revision)
		}
	}
	if st, ok := opts.Prefs.SelectionFor(opts.Config.ChoiceMode.String()); ok {
		c.restore(st)
	}
	c.phases.Resume()

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		config:    opts.Config,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		snapshot:  snap,
		c:         c,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.ctx.Done() != nil {
		cmds = append(cmds, waitDoneCmd(m.ctx))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.c.list.SetHeight(max(m.height-chromeRows-sessionBarRows, minListRows))
		return m, nil

	case tea.FocusMsg:
		m.c.phases.Resume()
		return m, nil

	case tea.BlurMsg:
		m.c.phases.Pause()
		return m, nil

	case tickMsg:
		m.c.list.Animate()
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.Loaded {
			m.c.swap(m.snapshot.Items, m.snapshot.Revision)
		}
		return m, nil

	case doneMsg:
		return m.quit()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	c := m.c
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()

	case key.Matches(msg, m.keys.Up):
		c.list.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		c.list.MoveCursor(1)
	case key.Matches(msg, m.keys.Top):
		c.list.SetCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		c.list.SetCursor(c.proxy.Size() - 1)
	case key.Matches(msg, m.keys.PageUp):
		c.list.MoveCursor(-c.list.Height())
	case key.Matches(msg, m.keys.PageDown):
		c.list.MoveCursor(c.list.Height())

	case key.Matches(msg, m.keys.Click):
		if !c.click(false) {
			m.setStatus("click not handled")
		}
	case key.Matches(msg, m.keys.LongClick):
		if !c.click(true) {
			m.setStatus("long-press not handled")
		}
	case key.Matches(msg, m.keys.Finish):
		c.finish()
	case key.Matches(msg, m.keys.Clear):
		c.mode.ClearChoices()
	case key.Matches(msg, m.keys.CheckAll):
		if !c.perform(actionCheckAll) {
			m.setStatus("check all needs an open multiple selection")
		}
	case key.Matches(msg, m.keys.ToggleEnabled):
		if c.toggleDisabledFilter() {
			m.setStatus("disabled items greyed out")
		} else {
			m.setStatus("disabled items enabled")
		}
	}
	return m, nil
}

// quit saves the selection and theme, releases the list and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	st := m.c.close()
	m.prefs.SetSelection(m.config.ChoiceMode.String(), st)
	m.savePrefs()
	return m, tea.Quit
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		glog.Warningf("[ui] save prefs: %v", err)
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusUntil = time.Now().Add(statusMessageTTL)
}

// renderMain renders header, session bar, list and footer.
func (m Model) renderMain() string {
	m.c.list.Frame()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSessionBar())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	parts := []string{styles.Logo.Render("rowbind")}
	parts = append(parts, styles.Text.Render(fmt.Sprintf("%d items", m.c.proxy.Size())))
	parts = append(parts, styles.MutedText.Render(m.config.ChoiceMode.String()))
	switch {
	case snap.IsOffline():
		parts = append(parts, styles.DangerText.Render("offline"))
	case snap.LastError != nil:
		parts = append(parts, styles.WarningText.Render("reload failed"))
	case !snap.LastUpdated.IsZero():
		parts = append(parts, styles.FaintText.Render("updated "+humanizeDuration(time.Since(snap.LastUpdated))))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderSessionBar() string {
	styles := m.theme.Styles()
	if m.c.bar.Open() {
		hint := "a all  c clear  esc done"
		return styles.SessionBar.Width(m.width).Render(m.c.bar.Title() + "  " + hint)
	}
	line := fmt.Sprintf("%d checked", m.c.mode.CheckedItemCount())
	if !m.c.honorDisabled {
		line += "  disabled filter off"
	}
	return styles.MutedText.Padding(0, 1).Width(m.width).Render(line)
}

func (m Model) renderList() string {
	styles := m.theme.Styles()
	rows := m.c.list.VisibleRows()
	cursor := m.c.list.Cursor()
	opts := rowRenderOptions{
		width:      max(m.width, 1),
		checkboxes: m.c.mode.IsActivated(),
	}

	var b strings.Builder
	for _, rv := range rows {
		opts.cursor = rv.pos == cursor
		b.WriteString(rv.render(styles, opts))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(styles.FaintText.Padding(0, 1).Render(m.emptyMessage()))
		b.WriteString("\n")
	}
	for i := max(len(rows), 1); i < m.c.list.Height(); i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) emptyMessage() string {
	if m.snapshot.LastError != nil {
		return "catalog unavailable: " + m.snapshot.LastError.Error()
	}
	if !m.snapshot.Loaded {
		return "loading catalog..."
	}
	return "catalog is empty"
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" && time.Now().Before(m.statusUntil) {
		return styles.Footer.Width(m.width).Render(m.status)
	}
	return styles.Footer.Width(m.width).Render(m.renderShortHelp())
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type doneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func waitDoneCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return doneMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}
