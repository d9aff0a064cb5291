package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-etch/internal/config"
	"github.com/vovakirdan/tui-etch/internal/core"
	"github.com/vovakirdan/tui-etch/internal/paint"
	"github.com/vovakirdan/tui-etch/internal/storage"
)

// Layout constants
const (
	toolbarRows = 1 // Rows above the grid frame
	frameSize   = 1 // Border width around the grid
)

// Options bundles the collaborators a sketch model needs.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig
	Store    *storage.Store // May be nil
	Logger   *log.Logger    // May be nil
	Recorder *Recorder      // Created from Store when nil

	// Clipboard receives yanked colors. Defaults to the system clipboard
	// for local sessions and to OSC 52 on Output for remote ones.
	Clipboard Clipboard
	Output    io.Writer
}

// Model is the Bubble Tea model for the sketch pad.
type Model struct {
	cfg      config.Config
	runtime  core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger
	recorder *Recorder
	clip     Clipboard

	grid   *paint.Grid
	disp   *paint.Dispatcher
	router *paint.Router
	layout *core.GridLayout // Shared with the router's resolver
	state  paint.AppState

	keyMapper *KeyMapper
	keys      KeyMap
	help      help.Model
	theme     Theme

	prompt   *Prompt
	alert    string
	alertSeq int
	hover    paint.Coord
	hovering bool

	err      error // Fatal error that ended the program
	quitting bool
}

// NewModel creates a sketch model with a fresh grid.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = NewRecorder(opts.Store, logger, rt.User, rt.Remote)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = defaultClipboard(rt.Remote, opts.Output)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	layout := &core.GridLayout{}
	m := Model{
		cfg:      opts.Config,
		runtime:  rt,
		store:    opts.Store,
		logger:   logger,
		recorder: recorder,
		clip:     clip,
		grid:     paint.NewGrid(opts.Config.Grid.Size),
		disp:     paint.NewDispatcher(opts.Config.DispatcherOptions(rt.Seed)),
		layout:   layout,
		state: paint.AppState{
			Mode:    opts.Config.Mode(),
			Current: opts.Config.Color(),
		},
		keyMapper: NewKeyMapper(keys),
		keys:      keys,
		help:      h,
		theme:     ThemeByName(opts.Config.UI.Theme),
	}
	m.recorder.GridSize(m.grid.Size)
	m.router = paint.NewRouter(paint.ResolverFunc(func(x, y int) (paint.Coord, bool) {
		col, row, ok := layout.CellAt(x, y)
		return paint.C(col, row), ok
	}))
	m.relayout()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("sketch started",
		"session", m.recorder.ID(),
		"size", m.grid.Size,
		"mode", m.state.Mode,
		"color", m.state.Current,
	)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tea.BlurMsg:
		m.router.Cancel()
		return m, nil

	case AlertExpiredMsg:
		if msg.Seq == m.alertSeq {
			m.alert = ""
		}
		return m, nil
	}

	if m.prompt != nil {
		p, cmd := m.prompt.Update(msg)
		m.prompt = &p
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input outside prompts.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionNormal:
		return m.setMode(paint.ModeNormal)
	case core.ActionRainbow:
		return m.setMode(paint.ModeRainbow)
	case core.ActionDarken:
		return m.setMode(paint.ModeDarken)

	case core.ActionClear:
		m.grid.Clear()
		m.recorder.Cleared()
		m.logger.Debug("grid cleared", "session", m.recorder.ID())
		return m, nil

	case core.ActionResize:
		p := NewGridSizePrompt(m.grid.Size, m.cfg.Grid.MinSize, m.cfg.Grid.MaxSize)
		m.prompt = &p
		return m, nil

	case core.ActionPickColor:
		p := NewColorPrompt(m.state.Current)
		m.prompt = &p
		return m, nil

	case core.ActionYank:
		return m.yank()

	case core.ActionTheme:
		return m.cycleTheme()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handlePromptKey processes keyboard input while a prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapPromptKey(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionBack:
		m.prompt = nil
		return m, nil
	case core.ActionConfirm:
		p := *m.prompt
		m.prompt = nil
		return m.submitPrompt(p)
	}

	p, cmd := m.prompt.Update(msg)
	m.prompt = &p
	return m, cmd
}

// submitPrompt applies accepted prompt input.
func (m Model) submitPrompt(p Prompt) (tea.Model, tea.Cmd) {
	switch p.Kind {
	case PromptGridSize:
		size, err := ParseGridSize(p.Value(), m.cfg.Grid.MinSize, m.cfg.Grid.MaxSize)
		if err != nil {
			return m.showAlert(err.Error())
		}
		m.grid.Resize(size)
		m.router.Cancel()
		m.recorder.Resized(size)
		m.relayout()
		m.savePreference(storage.PrefGridSize, strconv.Itoa(size))
		m.logger.Debug("grid resized", "session", m.recorder.ID(), "size", size)
		return m, nil

	case PromptColor:
		c, err := paint.ParseColor(p.Value())
		if err != nil {
			return m.showAlert(fmt.Sprintf("Not a color: %q", p.Value()))
		}
		m.state.Current = c
		m.savePreference(storage.PrefColor, string(c))
		m.logger.Debug("color changed", "session", m.recorder.ID(), "color", c)
		return m, nil
	}
	return m, nil
}

// handleMouse routes pointer input through the interaction router.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row, over := m.layout.CellAt(msg.X, msg.Y)
	m.hover, m.hovering = paint.C(col, row), over

	if m.prompt != nil {
		return m, nil
	}

	ev, ok := routerEvent(msg)
	if !ok {
		return m, nil
	}

	_, painted, err := m.router.Handle(ev, m.grid, m.disp, m.state)
	if err != nil {
		if IsFatal(err) {
			return m.fail(err)
		}
		m.logger.Warn("interaction rejected", "session", m.recorder.ID(), "error", err)
		return m.showAlert(err.Error())
	}
	if painted {
		m.recorder.Interaction(m.state.Mode)
	}
	return m, nil
}

// routerEvent converts a Bubble Tea mouse message to a router event.
// Only the left button paints; wheel and other buttons are ignored.
func routerEvent(msg tea.MouseMsg) (paint.Event, bool) {
	ev := paint.Event{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = paint.EventPress
	case tea.MouseActionRelease:
		ev.Kind = paint.EventRelease
	case tea.MouseActionMotion:
		// A motion with no button held ends a stroke whose release was
		// never reported, e.g. one released outside the window.
		if msg.Button == tea.MouseButtonNone {
			ev.Kind = paint.EventRelease
		} else {
			ev.Kind = paint.EventMotion
		}
	default:
		return ev, false
	}
	return ev, true
}

// setMode switches the paint mode.
func (m Model) setMode(mode paint.Mode) (tea.Model, tea.Cmd) {
	if m.state.Mode == mode {
		return m, nil
	}
	m.state.Mode = mode
	m.savePreference(storage.PrefMode, mode.String())
	m.logger.Debug("mode changed", "session", m.recorder.ID(), "mode", mode)
	return m, nil
}

// cycleTheme switches to the next chrome theme.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	next := config.Themes[0]
	for i, name := range config.Themes {
		if name == m.cfg.UI.Theme {
			next = config.Themes[(i+1)%len(config.Themes)]
			break
		}
	}
	m.cfg.UI.Theme = next
	m.theme = ThemeByName(next)
	m.savePreference(storage.PrefTheme, next)
	return m.showAlert("Theme: " + next)
}

// yank copies the color under the pointer to the clipboard.
func (m Model) yank() (tea.Model, tea.Cmd) {
	cell, ok := m.grid.At(m.hover)
	if !m.hovering || !ok {
		return m.showAlert("Point at a cell to copy its color")
	}
	hex := HexOf(cell.Rendered)
	if err := m.clip.Copy(hex); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		return m.showAlert("Clipboard unavailable")
	}
	return m.showAlert("Copied " + hex)
}

// showAlert puts a message on the status line until it expires.
func (m Model) showAlert(text string) (tea.Model, tea.Cmd) {
	m.alertSeq++
	m.alert = text
	return m, alertCmd(m.alertSeq)
}

// fail records a fatal error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("sketch aborted", "session", m.recorder.ID(), "error", err)
	m.err = err
	return m.quit()
}

// quit saves session statistics and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.recorder.Save()
	m.logger.Info("sketch ended",
		"session", m.recorder.ID(),
		"interactions", m.recorder.Session().Interactions(),
	)
	return m, tea.Quit
}

// savePreference stores a preference for local sessions. Best-effort.
func (m Model) savePreference(key, value string) {
	if m.store == nil || m.runtime.Remote {
		return
	}
	if err := m.store.SetPreference(key, value); err != nil {
		m.logger.Warn("could not save preference", "key", key, "error", err)
	}
}

// relayout recomputes where the grid sits on screen. Cells shrink to one
// column when the configured width would not fit the terminal.
func (m Model) relayout() {
	cellW := m.cfg.UI.CellWidth
	if avail := m.runtime.ScreenW - 2*frameSize; avail > 0 && m.grid.Size*cellW > avail {
		cellW = max(1, avail/m.grid.Size)
	}
	*m.layout = core.NewGridLayout(frameSize, toolbarRows+frameSize, m.grid.Size, cellW)
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Grid exposes the grid for inspection.
func (m Model) Grid() *paint.Grid {
	return m.grid
}

// State returns the current paint state.
func (m Model) State() paint.AppState {
	return m.state
}

// Alert returns the message currently on the status line.
func (m Model) Alert() string {
	return m.alert
}

// PromptOpen reports whether a prompt is waiting for input.
func (m Model) PromptOpen() bool {
	return m.prompt != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.viewToolbar())
	sb.WriteRune('\n')
	sb.WriteString(m.theme.Frame.Render(RenderGrid(m.grid, m.layout.CellW)))
	sb.WriteRune('\n')
	sb.WriteString(m.viewStatus())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// viewToolbar renders the title, mode buttons and current color.
func (m Model) viewToolbar() string {
	parts := []string{m.theme.Title.Render("etch")}
	for _, mode := range paint.AllModes() {
		style := m.theme.ModeInactive
		if mode == m.state.Mode {
			style = m.theme.ModeActive
		}
		parts = append(parts, style.Render(mode.String()))
	}

	sep := m.theme.Separator.Render("│")
	parts = append(parts,
		sep,
		m.theme.Label.Render("color")+" "+Swatch(m.state.Current, 2)+" "+m.theme.Value.Render(string(m.state.Current)),
		sep,
		m.theme.Label.Render("grid")+" "+m.theme.Value.Render(fmt.Sprintf("%d×%d", m.grid.Size, m.grid.Size)),
	)
	return strings.Join(parts, " ")
}

// viewStatus renders the prompt, the alert or details of the hovered cell.
func (m Model) viewStatus() string {
	if m.prompt != nil {
		return m.prompt.View(m.theme)
	}
	if m.alert != "" {
		return m.theme.Alert.Render(m.alert)
	}
	if m.err != nil {
		return m.theme.Error.Render(m.err.Error())
	}
	if !m.hovering {
		return m.theme.Status.Render("drag with the left button to draw")
	}

	cell, ok := m.grid.At(m.hover)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("%s %s", m.hover, cell.Rendered)
	if cell.Darkness > 0 {
		text += fmt.Sprintf("  darkness %d/%d", cell.Darkness, paint.MaxDarkness)
	}
	return m.theme.Status.Render(text)
}

// Run starts the Bubble Tea program for a local sketch session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover tracking plus drag painting
		tea.WithReportFocus(),    // Cancel strokes when focus is lost
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("sketch: %w", fm.Err())
	}
	return nil
}

// IsFatal reports whether err should abort a session rather than be shown.
func IsFatal(err error) bool {
	return errors.Is(err, paint.ErrUnrecognizedMode)
}
