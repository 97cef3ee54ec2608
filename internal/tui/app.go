package tui

import (
	"fmt"
	"log"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sadopc/projtimer/internal/export"
	"github.com/sadopc/projtimer/internal/store"
)

const (
	appTitle        = "Time Tracking System"
	namePlaceholder = "Enter project name"
	labelStart      = "Start timer"
	labelStop       = "Stop timer and add"
	timerStopped    = "Timer stopped"
	emptySessions   = "No projects"

	nameCharLimit = 120
)

// Options carries host-supplied settings. The App reads them but never
// changes them.
type Options struct {
	Theme        Theme
	ExportDir    string
	ExportFormat string
}

// App is the root Bubble Tea model: one screen with a name field, a
// start/stop toggle and the list of recorded sessions.
type App struct {
	store  *store.Store
	width  int
	height int

	theme  Theme
	styles styles

	input    textinput.Model
	timer    timerModel
	sessions []store.Session
	list     viewport.Model

	showChart bool
	chart     barchart.Model

	// Export dialog. Field pointers survive value copies.
	formActive    bool
	exportForm    *huh.Form
	exportFormat  *string
	exportDir     *string
	defaultFormat string
	defaultDir    string

	help      help.Model
	showHelp  bool
	status    string
	statusErr bool
	closed    bool
}

func NewApp(s *store.Store, opts Options) App {
	return newApp(s, opts, newTimerModel())
}

func newApp(s *store.Store, opts Options, timer timerModel) App {
	st := newStyles(opts.Theme)

	in := textinput.New()
	in.Placeholder = namePlaceholder
	in.Prompt = ""
	in.CharLimit = nameCharLimit
	in.PlaceholderStyle = st.placeholder
	in.TextStyle = st.inputText
	in.Focus()

	h := help.New()
	h.ShowAll = false

	format := opts.ExportFormat
	if format == "" {
		format = export.FormatCSV
	}
	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}
	f, d := format, dir

	return App{
		store:         s,
		theme:         opts.Theme,
		styles:        st,
		input:         in,
		timer:         timer,
		list:          viewport.New(0, 0),
		exportFormat:  &f,
		exportDir:     &d,
		defaultFormat: format,
		defaultDir:    dir,
		help:          h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		a.loadSessions(),
	)
}

func (a App) loadSessions() tea.Cmd {
	return func() tea.Msg {
		sessions, err := a.store.ListSessions()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return sessionsLoadedMsg{sessions: sessions}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.input.Width = max(10, a.width-10)
		a.resizeList()
		a.buildChart()
		return a, nil

	case sessionsLoadedMsg:
		a.sessions = msg.sessions
		a.syncList()
		a.buildChart()
		return a, nil

	case timerTickMsg:
		return a, a.timer.tick(msg)

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		return a, nil

	case tea.KeyMsg:
		if a.formActive {
			return a.updateExportForm(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			a.Close()
			return a, tea.Quit
		case key.Matches(msg, keys.Toggle):
			return a.toggle()
		case key.Matches(msg, keys.Export):
			return a.showExportForm()
		case key.Matches(msg, keys.Chart):
			a.showChart = !a.showChart
			a.resizeList()
			a.buildChart()
			return a, nil
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.ScrollUp):
			a.list.SetYOffset(a.list.YOffset - 1)
			return a, nil
		case key.Matches(msg, keys.ScrollDown):
			a.list.SetYOffset(a.list.YOffset + 1)
			return a, nil
		}
	}

	if a.formActive {
		return a.updateExportForm(msg)
	}

	// Everything else edits the project name.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// toggle is the single start/stop action. Stopping records a session
// under the current name and clears the field.
func (a App) toggle() (App, tea.Cmd) {
	if a.timer.running() {
		return a.stopAndRecord()
	}

	cmd, err := a.timer.start()
	if err != nil {
		return a, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	log.Printf("timer started")
	a.status = ""
	return a, cmd
}

func (a App) stopAndRecord() (App, tea.Cmd) {
	elapsed, err := a.timer.stop()
	if err != nil {
		return a, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	log.Printf("timer stopped after %ds", elapsed)

	name := a.input.Value()
	a.input.Reset()

	sess, err := a.store.Record(name, elapsed)
	if err != nil {
		log.Printf("record session: %v", err)
		return a, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	if sess == nil {
		return a, nil
	}

	log.Printf("session %s recorded: %q %s", sess.ID, sess.Name, sess.ElapsedDisplay)
	a.sessions = append(a.sessions, *sess)
	a.syncList()
	a.buildChart()
	a.status = "Added " + sess.Name
	a.statusErr = false
	return a, nil
}

// setName replaces the project name verbatim.
func (a *App) setName(text string) {
	a.input.SetValue(text)
}

// Close releases the timer. The App ignores ticks afterwards; calling
// Close again is a no-op.
func (a *App) Close() {
	if a.closed {
		return
	}
	if a.timer.running() {
		log.Printf("screen closed with timer running at %ds", a.timer.currentElapsed())
	}
	a.timer.close()
	a.closed = true
}

// Sessions returns the sessions recorded on this screen, oldest first.
func (a App) Sessions() []store.Session {
	return append([]store.Session(nil), a.sessions...)
}

func (a App) Running() bool { return a.timer.running() }

func (a App) Elapsed() int64 { return a.timer.currentElapsed() }

func (a App) Theme() Theme { return a.theme }
