// ABOUTME: Authenticated landing screen listing the generation workflows
// ABOUTME: Simple cursor menu that reports the chosen destination upward

package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/medvista/mediastudio-cli/internal/tui/icons"
	"github.com/medvista/mediastudio-cli/internal/tui/styles"
)

// Choice identifies a dashboard menu entry.
type Choice int

const (
	ChoiceImage Choice = iota
	ChoiceVideo
	ChoiceTranslate
	ChoiceLogout
	ChoiceQuit
)

// SelectedMsg is sent when the user picks a menu entry.
type SelectedMsg struct {
	Choice Choice
}

type item struct {
	icon  icons.Icon
	label string
	desc  string
	value Choice
}

// Dashboard is the workflow selection screen.
type Dashboard struct {
	items  []item
	cursor int
	width  int
}

// New creates the dashboard menu.
func New() *Dashboard {
	return &Dashboard{
		items: []item{
			{icons.Image, "Image Generation", "Create medical and healthcare images from text prompts", ChoiceImage},
			{icons.Video, "Video Generation", "Create narrated healthcare videos from prompts", ChoiceVideo},
			{icons.Translate, "Video Translation", "Translate existing videos into other languages", ChoiceTranslate},
			{icons.Lock, "Log out", "Clear the stored session", ChoiceLogout},
			{icons.Quit, "Quit", "Exit the application", ChoiceQuit},
		},
	}
}

// Init implements tea.Model
func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(d.items)-1 {
				d.cursor++
			}
		case "enter":
			choice := d.items[d.cursor].value
			return d, func() tea.Msg { return SelectedMsg{Choice: choice} }
		}
	}

	return d, nil
}

// View implements tea.Model
func (d *Dashboard) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Healthcare Media Studio"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Choose a workflow"))
	b.WriteString("\n\n")

	for i, it := range d.items {
		cursor := "  "
		label := styles.ValueStyle.Render(it.label)
		if i == d.cursor {
			cursor = styles.KeyStyle.Render("> ")
			label = styles.KeyStyle.Render(it.label)
		}
		b.WriteString(cursor + it.icon.String() + " " + label + "\n")
		if i == d.cursor {
			b.WriteString("    " + styles.LabelStyle.Render(it.desc) + "\n")
		}
	}

	return b.String()
}
