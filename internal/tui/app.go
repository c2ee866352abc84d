// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for retireplan.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// Which screen is visible lives in a router.State value owned by App. The
// onboarding flow reports completion through its callback, which hands the
// profile to router.Complete.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/retireplan/internal/config"
	"github.com/kingrea/retireplan/internal/logbook"
	"github.com/kingrea/retireplan/internal/onboarding"
	"github.com/kingrea/retireplan/internal/router"
)

const logPanelLines = 5

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithFlowOptions adds options to every onboarding flow the App starts.
func WithFlowOptions(opts ...onboarding.Option) AppOption {
	return func(a *App) {
		a.flowOpts = append(a.flowOpts, opts...)
	}
}

// WithStyles overrides the default lipgloss styles.
func WithStyles(styles Styles) AppOption {
	return func(a *App) {
		a.styles = styles
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config  *config.Config
	logbook *logbook.Logbook

	route    router.State
	flow     *onboarding.Flow
	flowOpts []onboarding.Option
	wizard   *wizardView

	styles Styles
	keys   screenKeys
	help   help.Model

	renderer      *glamour.TermRenderer
	rendererTheme string
	rendererWidth int

	statusMsg     string
	lastLogStatus string

	width  int
	height int
}

// NewApp creates a new App instance positioned on the first onboarding step.
func NewApp(cfg *config.Config, lb *logbook.Logbook, opts ...AppOption) *App {
	app := &App{
		config:  cfg,
		logbook: lb,
		route:   router.Initial(),
		styles:  DefaultStyles(),
		keys:    newScreenKeys(),
		help:    help.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.startOnboarding()
	app.logInfo("Session opened · view: %s", app.route.View)
	return app
}

// Profile returns the completed profile once onboarding has finished.
func (a *App) Profile() (onboarding.UserProfile, bool) {
	if !a.route.HasProfile() {
		return onboarding.UserProfile{}, false
	}
	p := *a.route.Profile
	p.FinancialGoals = a.route.Profile.Goals()
	return p, true
}

// Route exposes the current routing value.
func (a *App) Route() router.State {
	return a.route
}

// startOnboarding discards any previous flow and begins a fresh one.
func (a *App) startOnboarding() {
	opts := []onboarding.Option{}
	if a.config != nil {
		opts = append(opts, onboarding.WithInitialForm(a.config.InitialForm()))
	}
	if a.logbook != nil {
		opts = append(opts, onboarding.WithScopedRecorder(func(flowID string) onboarding.Recorder {
			return a.logbook.With("flow", flowID)
		}))
	}
	opts = append(opts, a.flowOpts...)
	opts = append(opts, onboarding.OnComplete(a.handleCompletion))
	a.flow = onboarding.New(opts...)
	a.wizard = newWizardView(a.flow, a.styles)
	if a.width > 0 {
		a.wizard.setWidth(a.width)
	}
	a.route = router.Navigate(a.route, router.ViewOnboarding)
}

func (a *App) handleCompletion(profile onboarding.UserProfile) {
	a.route = router.Complete(a.route, profile)
	a.statusMsg = fmt.Sprintf("Setup complete · welcome, %s", profile.Name)
	a.logInfo("Onboarding complete · routed to %s", a.route.View)
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logDebug(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Debug(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logProgress(status string) {
	status = strings.TrimSpace(status)
	if status == "" || status == a.lastLogStatus {
		return
	}
	a.lastLogStatus = status
	a.logInfo("%s", status)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.wizard != nil {
			a.wizard.setWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.logInfo("Session closed from %s", a.route.View)
			return a, tea.Quit
		}
		if a.route.View != router.ViewOnboarding {
			return a.handleScreenKey(msg)
		}
	}

	if a.route.View == router.ViewOnboarding && a.wizard != nil {
		step := a.flow.Step()
		cmd := a.wizard.Update(msg)
		if !a.flow.Completed() && a.flow.Step() != step {
			a.logProgress(fmt.Sprintf("Onboarding · %s", a.flow.Step().Title()))
		}
		return a, cmd
	}
	return a, nil
}

func (a *App) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.logInfo("Session closed from %s", a.route.View)
		return a, tea.Quit
	case key.Matches(msg, a.keys.Dashboard):
		a.navigate(router.ViewDashboard)
	case key.Matches(msg, a.keys.Chat):
		a.navigate(router.ViewChat)
	case key.Matches(msg, a.keys.Education):
		a.navigate(router.ViewEducation)
	case key.Matches(msg, a.keys.Onboarding):
		a.logInfo("Onboarding restarted")
		a.statusMsg = "Starting onboarding again"
		a.startOnboarding()
	case key.Matches(msg, a.keys.Theme):
		a.cycleTheme()
	}
	return a, nil
}

func (a *App) navigate(view router.View) {
	next := router.Navigate(a.route, view)
	if next.View != view {
		a.statusMsg = fmt.Sprintf("%s needs a completed profile", view.Title())
		a.logDebug("Navigation to %s blocked without a profile", view)
		return
	}
	a.route = next
	a.statusMsg = ""
	a.logProgress(fmt.Sprintf("View · %s", view))
}

func (a *App) cycleTheme() {
	if a.config == nil {
		return
	}
	next := config.ThemeAuto
	switch a.config.Theme() {
	case config.ThemeAuto:
		next = config.ThemeDark
	case config.ThemeDark:
		next = config.ThemeLight
	}
	if err := a.config.SetTheme(next); err != nil {
		a.statusMsg = fmt.Sprintf("Theme change failed: %v", err)
		a.logWarn("Theme change failed: %v", err)
		return
	}
	a.renderer = nil
	a.statusMsg = fmt.Sprintf("Theme: %s", next)
}

// View renders the current state to a string.
func (a *App) View() string {
	var content string
	if a.route.View == router.ViewOnboarding {
		content = a.wizard.View()
	} else {
		content = a.renderMarkdown(screenMarkdown(a.route.View, a.route.Profile))
		content = lipgloss.JoinVertical(lipgloss.Left, content, a.help.View(a.keys))
	}
	sections := []string{a.renderHeader(), a.styles.Box.Width(max(20, a.width-2)).Render(content)}
	if panel := a.renderLogPanel(); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, a.styles.StatusLine.Render(a.statusMsg))
	return strings.Join(sections, "\n")
}

func (a *App) renderHeader() string {
	title := a.styles.Header.Render("⬡ RETIREPLAN")
	var tabs []string
	for _, v := range router.Views() {
		style := a.styles.Tab
		if v == a.route.View {
			style = a.styles.ActiveTab
		} else if v.NeedsProfile() && !a.route.HasProfile() {
			style = style.Faint(true)
		}
		tabs = append(tabs, style.Render(v.Title()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (a *App) renderMarkdown(md string) string {
	theme := config.ThemeAuto
	if a.config != nil {
		theme = a.config.Theme()
	}
	width := a.width
	if width <= 0 {
		width = 80
	}
	if a.renderer == nil || a.rendererTheme != theme || a.rendererWidth != width {
		r, err := newRenderer(theme, width)
		if err != nil {
			a.logWarn("Markdown renderer unavailable: %v", err)
			return md
		}
		a.renderer, a.rendererTheme, a.rendererWidth = r, theme, width
		a.logDebug("Markdown renderer built · theme %s, width %d", theme, width)
	}
	out, err := a.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, _ := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := a.styles.LogHeading.Render(fmt.Sprintf("LOG · %s", fileName))
	body := a.styles.LogBody.Render(strings.Join(lines, "\n"))
	return a.styles.Box.Render(fmt.Sprintf("%s\n%s", head, body))
}
