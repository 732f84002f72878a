// ABOUTME: File picker TUI component for selecting a video to translate
// ABOUTME: Shows recent videos, path input, and videos found in the working directory

package filepicker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/medvista/mediastudio-cli/internal/workflow"
)

// State represents the current UI state
type state int

const (
	stateList state = iota
	stateInput
	stateBrowse
)

// FileSelectedMsg is sent when a video file is selected
type FileSelectedMsg struct {
	Path string
}

// CancelledMsg is sent when the user cancels
type CancelledMsg struct{}

// FilePicker is the video selection component
type FilePicker struct {
	recentFiles []string
	localVideos []string
	hasLocal    bool
	cursor      int
	state       state
	textInput   textinput.Model
	err         string
	width       int
	height      int
}

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// New creates a new FilePicker
func New(recentFiles []string, localVideos []string) *FilePicker {
	ti := textinput.New()
	ti.Placeholder = "/path/to/video.mp4"
	ti.CharLimit = 256
	ti.Width = 60

	return &FilePicker{
		recentFiles: recentFiles,
		localVideos: localVideos,
		hasLocal:    len(localVideos) > 0,
		cursor:      0,
		state:       stateList,
		textInput:   ti,
	}
}

// DiscoverVideos lists video files in the given directory, sorted by name.
func DiscoverVideos(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if workflow.IsVideoFile(path) {
			videos = append(videos, path)
		}
	}
	sort.Strings(videos)
	return videos
}

// Init implements tea.Model
func (fp *FilePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (fp *FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fp.width = msg.Width
		fp.height = msg.Height
		return fp, nil

	case tea.KeyMsg:
		// Clear error on any key press
		fp.err = ""

		switch fp.state {
		case stateList:
			return fp.updateList(msg)
		case stateInput:
			return fp.updateInput(msg)
		case stateBrowse:
			return fp.updateBrowse(msg)
		}
	}

	return fp, nil
}

func (fp *FilePicker) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxItems := fp.listItemCount()

	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < maxItems-1 {
			fp.cursor++
		}
	case "enter":
		return fp.selectListItem()
	case "esc", "b":
		return fp, func() tea.Msg { return CancelledMsg{} }
	}

	return fp, nil
}

func (fp *FilePicker) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.state = stateList
		fp.textInput.SetValue("")
		return fp, nil
	case "enter":
		path := fp.textInput.Value()
		if path == "" {
			fp.err = "Please enter a file path"
			return fp, nil
		}
		return fp.selectFile(path)
	}

	var cmd tea.Cmd
	fp.textInput, cmd = fp.textInput.Update(msg)
	return fp, cmd
}

func (fp *FilePicker) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxItems := len(fp.localVideos) + 1 // +1 for [back]

	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < maxItems-1 {
			fp.cursor++
		}
	case "enter":
		if fp.cursor == len(fp.localVideos) {
			// [back] selected
			fp.state = stateList
			fp.cursor = 0
			return fp, nil
		}
		return fp.selectFile(fp.localVideos[fp.cursor])
	case "esc", "b":
		fp.state = stateList
		fp.cursor = 0
		return fp, nil
	}

	return fp, nil
}

func (fp *FilePicker) listItemCount() int {
	count := len(fp.recentFiles) + 1 // +1 for "Enter path..."
	if fp.hasLocal {
		count++ // +1 for "Browse this directory..."
	}
	return count
}

func (fp *FilePicker) selectListItem() (tea.Model, tea.Cmd) {
	recentCount := len(fp.recentFiles)

	if fp.cursor < recentCount {
		// Recent video selected
		return fp.selectFile(fp.recentFiles[fp.cursor])
	}

	if fp.cursor == recentCount {
		// "Enter path..." selected
		fp.state = stateInput
		fp.textInput.Focus()
		return fp, textinput.Blink
	}

	if fp.hasLocal && fp.cursor == recentCount+1 {
		// "Browse this directory..." selected
		fp.state = stateBrowse
		fp.cursor = 0
		return fp, nil
	}

	return fp, nil
}

// selectFile vets the chosen path before announcing the selection. The file
// must exist and look like a video; the upload itself happens at submit time.
func (fp *FilePicker) selectFile(path string) (tea.Model, tea.Cmd) {
	expandedPath := expandPath(path)

	if _, err := os.Stat(expandedPath); err != nil {
		if os.IsNotExist(err) {
			fp.err = "File not found: " + path
		} else if os.IsPermission(err) {
			fp.err = "Cannot read file: permission denied"
		} else {
			fp.err = "Error reading file: " + err.Error()
		}
		return fp, nil
	}

	if !workflow.IsVideoFile(expandedPath) {
		fp.err = "Please select a valid video file"
		return fp, nil
	}

	return fp, func() tea.Msg {
		return FileSelectedMsg{Path: expandedPath}
	}
}

// expandPath expands ~ to home directory and resolves relative paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	return path
}

// SetError sets an error message to display
func (fp *FilePicker) SetError(msg string) {
	fp.err = msg
}

// View implements tea.Model
func (fp *FilePicker) View() string {
	switch fp.state {
	case stateInput:
		return fp.viewInput()
	case stateBrowse:
		return fp.viewBrowse()
	default:
		return fp.viewList()
	}
}

func (fp *FilePicker) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select a video to translate"))
	b.WriteString("\n\n")

	// Recent videos section
	if len(fp.recentFiles) > 0 {
		b.WriteString(helpStyle.Render("Recent videos:"))
		b.WriteString("\n")
		for i, path := range fp.recentFiles {
			cursor := "  "
			style := normalStyle
			if i == fp.cursor {
				cursor = "> "
				style = selectedStyle
			}
			// Truncate long paths
			display := path
			if len(display) > fp.width-10 && fp.width > 20 {
				display = "..." + display[len(display)-(fp.width-13):]
			}
			b.WriteString(cursor + style.Render(display) + "\n")
		}
		b.WriteString("\n")

		dividerWidth := min(40, fp.width-4)
		if dividerWidth < 1 {
			dividerWidth = 40 // Default width if terminal size unknown
		}
		divider := strings.Repeat("─", dividerWidth)
		b.WriteString(dividerStyle.Render(divider))
		b.WriteString("\n")
	}

	// Enter path option
	idx := len(fp.recentFiles)
	cursor := "  "
	style := normalStyle
	if fp.cursor == idx {
		cursor = "> "
		style = selectedStyle
	}
	b.WriteString(cursor + style.Render("Enter path...") + "\n")

	// Browse option
	if fp.hasLocal {
		idx++
		cursor = "  "
		style = normalStyle
		if fp.cursor == idx {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + style.Render("Browse this directory...") + "\n")
	}

	// Error message
	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}

	return b.String()
}

func (fp *FilePicker) viewInput() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Enter video path"))
	b.WriteString("\n\n")
	b.WriteString(fp.textInput.View())

	if fp.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}

	return b.String()
}

func (fp *FilePicker) viewBrowse() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Videos in this directory"))
	b.WriteString("\n\n")

	for i, path := range fp.localVideos {
		cursor := "  "
		style := normalStyle
		if i == fp.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + style.Render(filepath.Base(path)) + "\n")
	}

	// [back] option
	cursor := "  "
	style := normalStyle
	if fp.cursor == len(fp.localVideos) {
		cursor = "> "
		style = selectedStyle
	}
	b.WriteString(cursor + style.Render("[back]") + "\n")

	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
