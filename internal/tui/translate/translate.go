// ABOUTME: Video translation screen combining file picking and language choice
// ABOUTME: Owns a workflow controller for the translation request lifecycle

package translate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/medvista/mediastudio-cli/internal/language"
	"github.com/medvista/mediastudio-cli/internal/tui/filepicker"
	"github.com/medvista/mediastudio-cli/internal/tui/icons"
	"github.com/medvista/mediastudio-cli/internal/tui/recentfiles"
	"github.com/medvista/mediastudio-cli/internal/tui/styles"
	"github.com/medvista/mediastudio-cli/internal/workflow"
)

// CancelledMsg is sent when the user leaves the screen.
type CancelledMsg struct{}

// resolvedMsg carries a finished submission back into the update loop, tagged
// with the controller that issued the call so stale outcomes from a torn-down
// screen are dropped.
type resolvedMsg struct {
	ctrl *workflow.Controller
	out  workflow.Outcome
}

type state int

const (
	statePick state = iota
	stateForm
)

// Model is the video translation screen.
type Model struct {
	ctrl    *workflow.Controller
	recent  *recentfiles.RecentFiles
	picker  *filepicker.FilePicker
	form    *huh.Form
	state   state
	file    string
	lang    string
	spin    spinner.Model
	width   int
	height  int
}

// New creates the translation screen.
func New(submit workflow.SubmitFunc, recent *recentfiles.RecentFiles) *Model {
	m := &Model{
		ctrl:   workflow.New(workflow.KindVideoTranslation, submit),
		recent: recent,
		lang:   "es",
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.openPicker()
	return m
}

// Controller exposes the workflow state for the root model and tests.
func (m *Model) Controller() *workflow.Controller {
	return m.ctrl
}

func (m *Model) openPicker() {
	recentList, _ := m.recent.Load()
	cwd, _ := os.Getwd()
	m.picker = filepicker.New(recentList, filepicker.DiscoverVideos(cwd))
	m.state = statePick
}

func (m *Model) createForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(language.Translation))
	for _, l := range language.Translation {
		options = append(options, huh.NewOption(l.Name, l.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target language").
				Description("The video's speech will be translated into this language").
				Options(options...).
				Value(&m.lang),
		).Title("Translate " + filepath.Base(m.file)),
	)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picker != nil {
			m.picker.Update(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Phase() == workflow.PhaseSubmitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case filepicker.FileSelectedMsg:
		m.recent.Add(msg.Path)
		m.file = msg.Path
		m.form = m.createForm()
		m.state = stateForm
		return m, m.form.Init()

	case filepicker.CancelledMsg:
		return m, func() tea.Msg { return CancelledMsg{} }

	case resolvedMsg:
		if msg.ctrl != m.ctrl {
			return m, nil
		}
		m.ctrl.Resolve(msg.out)
		if m.ctrl.Phase() == workflow.PhaseSucceeded {
			// The file is single-use; the language choice carries over. The
			// completed form must not stay armed, so the picker comes back up
			// for the next translation.
			m.file = ""
			m.openPicker()
		}
		return m, nil
	}

	if m.ctrl.Phase() == workflow.PhaseSubmitting {
		// Frozen until the backend answers.
		return m, nil
	}

	switch m.state {
	case statePick:
		return m.updatePick(msg)
	case stateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m *Model) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		model, cmd := m.picker.Update(key)
		m.picker = model.(*filepicker.FilePicker)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.openPicker()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}

	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	in := workflow.Input{
		FilePath:       m.file,
		FileName:       filepath.Base(m.file),
		TargetLanguage: m.lang,
	}

	call, ok := m.ctrl.Submit(in)
	if !ok {
		// Validation failed; re-arm the form so the error can be acted on.
		m.form = m.createForm()
		return m, m.form.Init()
	}

	ctrl := m.ctrl
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		return resolvedMsg{ctrl: ctrl, out: call(context.Background())}
	})
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(icons.Translate.String() + " Healthcare Video Translation"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Supports %d languages", len(language.Translation))))
	b.WriteString("\n\n")

	if m.ctrl.Phase() == workflow.PhaseSubmitting {
		b.WriteString(m.spin.View() + " Translating your healthcare video. This may take a few minutes...")
		b.WriteString("\n")
		return b.String()
	}

	switch m.state {
	case statePick:
		b.WriteString(m.picker.View())
	case stateForm:
		b.WriteString(m.form.View())
	}

	if msg := m.ctrl.LastError(); msg != "" {
		b.WriteString("\n")
		b.WriteString(styles.StatusError.Render(msg))
		b.WriteString("\n")
	}

	if res := m.ctrl.Current(); res != nil {
		b.WriteString("\n")
		b.WriteString(styles.StatusOK.Render(icons.CheckOK.String() + " Translated"))
		b.WriteString("\n")
		b.WriteString(styles.LabelStyle.Render("Original file: ") + res.FileName + "\n")
		b.WriteString(styles.LabelStyle.Render("Translated to: ") +
			language.Name(language.Translation, res.TargetLanguage) + "\n")
		b.WriteString(styles.LabelStyle.Render("URL:           ") + styles.ValueStyle.Render(res.MediaURL) + "\n")
	}

	if history := m.ctrl.History(); len(history) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(icons.History.String() +
			fmt.Sprintf(" Recent translations (%d)", len(history))))
		b.WriteString("\n")
		for _, item := range history {
			b.WriteString("  " + styles.LabelStyle.Render(item.FileName) + " " +
				icons.Translate.String() + " " +
				language.Name(language.Translation, item.TargetLanguage) + "\n")
			b.WriteString("    " + icons.Link.String() + " " + item.MediaURL + "\n")
		}
	}

	return b.String()
}
