// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes between screens and guards the ones that need a session

package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/medvista/mediastudio-cli/internal/client"
	"github.com/medvista/mediastudio-cli/internal/debuglog"
	"github.com/medvista/mediastudio-cli/internal/session"
	"github.com/medvista/mediastudio-cli/internal/tui/dashboard"
	"github.com/medvista/mediastudio-cli/internal/tui/generate"
	"github.com/medvista/mediastudio-cli/internal/tui/icons"
	"github.com/medvista/mediastudio-cli/internal/tui/login"
	"github.com/medvista/mediastudio-cli/internal/tui/recentfiles"
	"github.com/medvista/mediastudio-cli/internal/tui/styles"
	"github.com/medvista/mediastudio-cli/internal/tui/translate"
	"github.com/medvista/mediastudio-cli/internal/workflow"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenImage
	ScreenVideo
	ScreenTranslate
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before header/footer stop scaling
)

// loginResultMsg is sent when a login attempt completes
type loginResultMsg struct {
	result session.LoginResult
}

// App is the root model for the TUI
type App struct {
	client  *client.Client
	session *session.Store
	recent  *recentfiles.RecentFiles
	screen  Screen
	width   int
	height  int

	// Child models; the active one is non-nil, the rest are torn down.
	// Tearing down a workflow screen discards its controller and history.
	loginScreen     *login.Login
	dash            *dashboard.Dashboard
	imageScreen     *generate.Model
	videoScreen     *generate.Model
	translateScreen *translate.Model
}

// New creates the TUI application. The session must already be restored so
// the first route decision is made from a determined state, never a guess.
func New(apiClient *client.Client, sess *session.Store, configDir string) *App {
	a := &App{
		client:  apiClient,
		session: sess,
		recent:  recentfiles.New(configDir),
	}

	if sess.IsAuthenticated() {
		a.screen = ScreenDashboard
		a.dash = dashboard.New()
	} else {
		a.screen = ScreenLogin
		a.loginScreen = login.New()
	}

	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.loginScreen != nil {
		return a.loginScreen.Init()
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forward(msg)

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.screen == ScreenDashboard && msg.String() == "q" {
			return a, tea.Quit
		}
		return a, a.forward(msg)

	case login.SubmittedMsg:
		return a, a.doLogin(msg.Username, msg.Password)

	case loginResultMsg:
		if !msg.result.OK {
			if a.loginScreen != nil {
				a.loginScreen.SetError(msg.result.Message)
				return a, a.loginScreen.Init()
			}
			return a, nil
		}
		return a.navigate(ScreenDashboard)

	case login.CancelledMsg:
		// Leaving login while signed in just returns to the dashboard;
		// otherwise there is nowhere else to go.
		if a.session.IsAuthenticated() {
			return a.navigate(ScreenDashboard)
		}
		return a, tea.Quit

	case dashboard.SelectedMsg:
		return a.handleDashboardChoice(msg.Choice)

	case generate.CancelledMsg:
		return a.navigate(ScreenDashboard)

	case translate.CancelledMsg:
		return a.navigate(ScreenDashboard)

	default:
		// Spinner ticks, huh internals, and resolved submissions belong to
		// the active screen. A resolution for a torn-down screen lands here
		// with its model gone and is dropped.
		return a, a.forward(msg)
	}
}

// forward routes a message to the active child model.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen == nil {
			return nil
		}
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return cmd
	case ScreenDashboard:
		if a.dash == nil {
			return nil
		}
		model, cmd := a.dash.Update(msg)
		a.dash = model.(*dashboard.Dashboard)
		return cmd
	case ScreenImage:
		if a.imageScreen == nil {
			return nil
		}
		model, cmd := a.imageScreen.Update(msg)
		a.imageScreen = model.(*generate.Model)
		return cmd
	case ScreenVideo:
		if a.videoScreen == nil {
			return nil
		}
		model, cmd := a.videoScreen.Update(msg)
		a.videoScreen = model.(*generate.Model)
		return cmd
	case ScreenTranslate:
		if a.translateScreen == nil {
			return nil
		}
		model, cmd := a.translateScreen.Update(msg)
		a.translateScreen = model.(*translate.Model)
		return cmd
	}
	return nil
}

func (a *App) handleDashboardChoice(choice dashboard.Choice) (tea.Model, tea.Cmd) {
	switch choice {
	case dashboard.ChoiceImage:
		return a.navigate(ScreenImage)
	case dashboard.ChoiceVideo:
		return a.navigate(ScreenVideo)
	case dashboard.ChoiceTranslate:
		return a.navigate(ScreenTranslate)
	case dashboard.ChoiceLogout:
		a.session.Logout()
		return a.navigate(ScreenLogin)
	case dashboard.ChoiceQuit:
		return a, tea.Quit
	}
	return a, nil
}

// navigate switches screens, applying the route guard: every screen except
// login requires an authenticated session, and login is always enterable.
// The previous screen's model is dropped, which is what bounds a workflow's
// state to its view lifetime.
func (a *App) navigate(target Screen) (tea.Model, tea.Cmd) {
	if target != ScreenLogin && !a.session.IsAuthenticated() {
		debuglog.Warn("redirecting unauthenticated navigation to login")
		target = ScreenLogin
	}

	a.loginScreen = nil
	a.dash = nil
	a.imageScreen = nil
	a.videoScreen = nil
	a.translateScreen = nil
	a.screen = target

	switch target {
	case ScreenLogin:
		a.loginScreen = login.New()
		return a, a.loginScreen.Init()
	case ScreenDashboard:
		a.dash = dashboard.New()
		return a, nil
	case ScreenImage:
		a.imageScreen = generate.New(workflow.KindImage, a.imageSubmit)
		return a, a.imageScreen.Init()
	case ScreenVideo:
		a.videoScreen = generate.New(workflow.KindVideo, a.videoSubmit)
		return a, a.videoScreen.Init()
	case ScreenTranslate:
		a.translateScreen = translate.New(a.translateSubmit, a.recent)
		return a, a.translateScreen.Init()
	}

	return a, nil
}

// doLogin runs the login attempt off the update loop.
func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		result := a.session.Login(context.Background(), a.client, username, password)
		return loginResultMsg{result: result}
	}
}

// imageSubmit issues an image generation call with the token in effect now.
func (a *App) imageSubmit(ctx context.Context, in workflow.Input) (string, error) {
	resp, err := a.client.GenerateImage(ctx, a.session.Token(), in.Prompt)
	if err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}

// videoSubmit issues a video generation call with the token in effect now.
func (a *App) videoSubmit(ctx context.Context, in workflow.Input) (string, error) {
	resp, err := a.client.GenerateVideo(ctx, a.session.Token(), in.Prompt, in.TargetLanguage, in.Story)
	if err != nil {
		return "", err
	}
	return resp.VideoURL, nil
}

// translateSubmit uploads the selected video with the token in effect now.
func (a *App) translateSubmit(ctx context.Context, in workflow.Input) (string, error) {
	f, err := os.Open(in.FilePath)
	if err != nil {
		debuglog.Error("open video", err)
		return "", fmt.Errorf("cannot open %s", in.FileName)
	}
	defer f.Close()

	resp, err := a.client.TranslateVideo(ctx, a.session.Token(), in.FileName, f, in.TargetLanguage)
	if err != nil {
		return "", err
	}
	return resp.TranslatedVideoURL, nil
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		if a.loginScreen != nil {
			content = a.loginScreen.View()
		}
	case ScreenDashboard:
		if a.dash != nil {
			content = a.dash.View()
		}
	case ScreenImage:
		if a.imageScreen != nil {
			content = a.imageScreen.View()
		}
	case ScreenVideo:
		if a.videoScreen != nil {
			content = a.videoScreen.View()
		}
	case ScreenTranslate:
		if a.translateScreen != nil {
			content = a.translateScreen.View()
		}
	}

	return a.wrapWithFrame(content)
}

// renderHeader creates the header bar with app branding and session state
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Healthcare Media Studio"))

	rightText := ""
	if a.session.IsAuthenticated() {
		rightText = contextStyle.Render(icons.User.String()+" signed in") + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╭─"+leftText) + fill + rightText + borderStyle.Render("─╮")
}

// renderFooter creates the footer with keyboard shortcuts for the screen
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Back", "Ctrl+c Quit"}
	case ScreenDashboard:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenImage:
		shortcuts = []string{"Ctrl+s Generate", "Esc Back", "Ctrl+c Quit"}
	case ScreenVideo:
		shortcuts = []string{"Tab Field", "Ctrl+s Generate", "Esc Back", "Ctrl+c Quit"}
	case ScreenTranslate:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "Esc Back", "Ctrl+c Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlainText) // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╰─") + leftText + borderStyle.Render(fill+"─╯")
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(apiClient *client.Client, sess *session.Store, configDir string) error {
	app := New(apiClient, sess, configDir)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
