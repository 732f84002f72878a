// ABOUTME: Login screen as a bubbletea model wrapping a huh form
// ABOUTME: Collects credentials and reports them up for the session to use

package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/medvista/mediastudio-cli/internal/tui/icons"
	"github.com/medvista/mediastudio-cli/internal/tui/styles"
)

// SubmittedMsg carries the entered credentials when the form completes.
type SubmittedMsg struct {
	Username string
	Password string
}

// CancelledMsg is sent when the user backs out of the login screen.
type CancelledMsg struct{}

// Login is the login screen model.
type Login struct {
	form       *huh.Form
	username   string
	password   string
	submitting bool
	spin       spinner.Model
	err        string
	width      int
}

// createTheme returns a huh theme matching the app palette.
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(styles.Danger)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(styles.Primary)
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(styles.Muted)

	return t
}

// New creates a login screen with empty credentials.
func New() *Login {
	l := &Login{}
	l.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				CharLimit(64).
				Value(&l.username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(128).
				Value(&l.password),
		).Title("Sign in").
			Description("Enter your credentials to access the studio"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width

	case spinner.TickMsg:
		if l.submitting {
			var cmd tea.Cmd
			l.spin, cmd = l.spin.Update(msg)
			return l, cmd
		}
		return l, nil

	case tea.KeyMsg:
		if msg.String() == "esc" && !l.submitting {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}

	// Keystrokes during submission are ignored; the form is frozen until the
	// attempt resolves.
	if l.submitting {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		if strings.TrimSpace(l.username) == "" || l.password == "" {
			l.SetError("Please enter a username and password")
			return l, l.form.Init()
		}

		l.submitting = true
		l.err = ""
		username, password := l.username, l.password
		return l, tea.Batch(l.spin.Tick, func() tea.Msg {
			return SubmittedMsg{Username: username, Password: password}
		})
	}

	return l, cmd
}

// SetError displays a failed login message and re-arms the form. The
// username is kept so only the password needs re-entering.
func (l *Login) SetError(msg string) {
	l.err = msg
	l.submitting = false
	l.password = ""
	l.form = l.createForm()
}

// Submitting reports whether a login attempt is in flight.
func (l *Login) Submitting() bool {
	return l.submitting
}

// View implements tea.Model
func (l *Login) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(icons.Lock.String() + " Login"))
	b.WriteString("\n\n")

	if l.submitting {
		b.WriteString(l.spin.View() + " Signing in...")
		return b.String()
	}

	b.WriteString(l.form.View())

	if l.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.StatusError.Render(l.err))
	}

	return b.String()
}
