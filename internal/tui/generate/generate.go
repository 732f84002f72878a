// ABOUTME: Screen for the prompt-driven workflows (image and video generation)
// ABOUTME: Owns a workflow controller and renders its phase, result, and history

package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/medvista/mediastudio-cli/internal/language"
	"github.com/medvista/mediastudio-cli/internal/tui/icons"
	"github.com/medvista/mediastudio-cli/internal/tui/styles"
	"github.com/medvista/mediastudio-cli/internal/workflow"
)

// CancelledMsg is sent when the user leaves the screen.
type CancelledMsg struct{}

// resolvedMsg carries a finished submission back into the update loop. It is
// tagged with the controller that issued the call: a late message from a
// torn-down screen must not resolve whichever screen happens to be active.
type resolvedMsg struct {
	ctrl *workflow.Controller
	out  workflow.Outcome
}

const (
	focusPrompt = iota
	focusStory
)

// Model is the generation screen for one prompt-driven workflow.
type Model struct {
	ctrl   *workflow.Controller
	prompt textarea.Model
	story  textinput.Model
	focus  int
	spin   spinner.Model
	width  int
	height int
}

// New creates a generation screen. kind must be KindImage or KindVideo.
func New(kind workflow.Kind, submit workflow.SubmitFunc) *Model {
	ta := textarea.New()
	ta.Placeholder = "e.g., A doctor explaining a medical chart to a patient"
	ta.SetHeight(3)
	ta.CharLimit = 1000
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "e.g., AI in healthcare (optional)"
	ti.CharLimit = 200
	ti.Width = 50

	return &Model{
		ctrl:   workflow.New(kind, submit),
		prompt: ta,
		story:  ti,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Controller exposes the workflow state for the root model and tests.
func (m *Model) Controller() *workflow.Controller {
	return m.ctrl
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Phase() == workflow.PhaseSubmitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case resolvedMsg:
		if msg.ctrl != m.ctrl {
			// Outcome of an abandoned screen's submission.
			return m, nil
		}
		m.ctrl.Resolve(msg.out)
		if m.ctrl.Phase() == workflow.PhaseSucceeded {
			// Prompt and story are single-use; the language selection is not.
			m.prompt.Reset()
			m.story.Reset()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Inputs are frozen while a submission is in flight; esc still leaves the
	// screen (the eventual response is dropped with it).
	if msg.String() == "esc" {
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	if m.ctrl.Phase() == workflow.PhaseSubmitting {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "shift+tab":
		if m.ctrl.Kind() == workflow.KindVideo {
			m.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusStory {
		m.story, cmd = m.story.Update(msg)
	} else {
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusPrompt {
		m.focus = focusStory
		m.prompt.Blur()
		m.story.Focus()
	} else {
		m.focus = focusPrompt
		m.story.Blur()
		m.prompt.Focus()
	}
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	in := workflow.Input{Prompt: m.prompt.Value()}
	if m.ctrl.Kind() == workflow.KindVideo {
		in.TargetLanguage = language.Video[0].Code
		in.Story = m.story.Value()
	}

	call, ok := m.ctrl.Submit(in)
	if !ok {
		return m, nil
	}

	ctrl := m.ctrl
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		return resolvedMsg{ctrl: ctrl, out: call(context.Background())}
	})
}

func (m *Model) title() string {
	if m.ctrl.Kind() == workflow.KindImage {
		return icons.Image.String() + " Healthcare Image Generation"
	}
	return icons.Video.String() + " Healthcare Video Generation"
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title()))
	b.WriteString("\n\n")

	b.WriteString(styles.LabelStyle.Render("Prompt"))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n")

	if m.ctrl.Kind() == workflow.KindVideo {
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render("Story theme"))
		b.WriteString("\n")
		b.WriteString(m.story.View())
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render("Target language: ") +
			language.Name(language.Video, language.Video[0].Code))
		b.WriteString("\n")
	}

	if msg := m.ctrl.LastError(); msg != "" {
		b.WriteString("\n")
		b.WriteString(styles.StatusError.Render(msg))
		b.WriteString("\n")
	}

	if m.ctrl.Phase() == workflow.PhaseSubmitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View() + " Generating... this may take a few minutes")
		b.WriteString("\n")
	}

	if res := m.ctrl.Current(); res != nil {
		b.WriteString("\n")
		b.WriteString(styles.StatusOK.Render(icons.CheckOK.String() + " Generated"))
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render("Prompt: ") + res.Prompt + "\n")
		b.WriteString(styles.LabelStyle.Render("URL:    ") + styles.ValueStyle.Render(res.MediaURL) + "\n")
	}

	if history := m.ctrl.History(); len(history) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(icons.History.String() +
			fmt.Sprintf(" Recent generations (%d)", len(history))))
		b.WriteString("\n")
		for _, item := range history {
			prompt := item.Prompt
			if len(prompt) > 60 {
				prompt = prompt[:57] + "..."
			}
			b.WriteString("  " + styles.LabelStyle.Render(prompt) + "\n")
			b.WriteString("    " + icons.Link.String() + " " + item.MediaURL + "\n")
		}
	}

	return b.String()
}
