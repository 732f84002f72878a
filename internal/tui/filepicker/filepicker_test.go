// ABOUTME: Tests for the video picker TUI component
// ABOUTME: Validates navigation, selection vetting, and state transitions

package filepicker

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func writeVideo(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fake video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	fp := New([]string{"/path/to/clip.mp4"}, nil)

	if fp == nil {
		t.Fatal("New() returned nil")
	}
	if fp.state != stateList {
		t.Errorf("expected initial state stateList, got %d", fp.state)
	}
}

func TestBrowseOptionOnlyWithLocalVideos(t *testing.T) {
	if fp := New(nil, nil); fp.hasLocal {
		t.Error("expected no browse option without local videos")
	}
	if fp := New(nil, []string{"/tmp/clip.mp4"}); !fp.hasLocal {
		t.Error("expected browse option with local videos")
	}
}

func TestSelectRecentVideo(t *testing.T) {
	dir := t.TempDir()
	video := writeVideo(t, dir, "clip.mp4")

	fp := New([]string{video}, nil)
	model, cmd := fp.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}

	msg := cmd()
	selected, ok := msg.(FileSelectedMsg)
	if !ok {
		t.Fatalf("expected FileSelectedMsg, got %T", msg)
	}
	if selected.Path != video {
		t.Errorf("unexpected path %q", selected.Path)
	}
	if model.(*FilePicker).err != "" {
		t.Errorf("unexpected error %q", model.(*FilePicker).err)
	}
}

func TestSelectMissingFile(t *testing.T) {
	fp := New([]string{"/nonexistent/clip.mp4"}, nil)

	_, cmd := fp.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("expected no command for missing file")
	}
	if fp.err == "" {
		t.Error("expected an error for missing file")
	}
}

func TestSelectNonVideoFile(t *testing.T) {
	dir := t.TempDir()
	notVideo := writeVideo(t, dir, "notes.txt")

	fp := New([]string{notVideo}, nil)
	_, cmd := fp.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("expected no command for non-video file")
	}
	if fp.err != "Please select a valid video file" {
		t.Errorf("unexpected error %q", fp.err)
	}
}

func TestEnterPathFlow(t *testing.T) {
	dir := t.TempDir()
	video := writeVideo(t, dir, "clip.mp4")

	fp := New(nil, nil)

	// The only list item is "Enter path...".
	fp.Update(keyMsg("enter"))
	if fp.state != stateInput {
		t.Fatalf("expected input state, got %d", fp.state)
	}

	fp.textInput.SetValue(video)
	_, cmd := fp.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	if msg, ok := cmd().(FileSelectedMsg); !ok || msg.Path != video {
		t.Errorf("unexpected selection %v", cmd())
	}
}

func TestEnterPathEmpty(t *testing.T) {
	fp := New(nil, nil)
	fp.Update(keyMsg("enter"))

	_, cmd := fp.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("expected no command for empty path")
	}
	if fp.err != "Please enter a file path" {
		t.Errorf("unexpected error %q", fp.err)
	}
}

func TestBrowseFlow(t *testing.T) {
	dir := t.TempDir()
	video := writeVideo(t, dir, "local.mp4")

	fp := New(nil, []string{video})

	// Move from "Enter path..." to "Browse this directory..." and enter.
	fp.Update(keyMsg("down"))
	fp.Update(keyMsg("enter"))
	if fp.state != stateBrowse {
		t.Fatalf("expected browse state, got %d", fp.state)
	}

	_, cmd := fp.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	if msg, ok := cmd().(FileSelectedMsg); !ok || msg.Path != video {
		t.Errorf("unexpected selection %v", cmd())
	}
}

func TestEscCancelsFromList(t *testing.T) {
	fp := New(nil, nil)

	_, cmd := fp.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("expected a cancel command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestEscFromBrowseReturnsToList(t *testing.T) {
	fp := New(nil, []string{"/tmp/clip.mp4"})
	fp.state = stateBrowse

	_, cmd := fp.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("expected no command")
	}
	if fp.state != stateList {
		t.Errorf("expected list state, got %d", fp.state)
	}
}

func TestDiscoverVideos(t *testing.T) {
	dir := t.TempDir()
	writeVideo(t, dir, "b.mp4")
	writeVideo(t, dir, "a.mkv")
	writeVideo(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0755); err != nil {
		t.Fatal(err)
	}

	videos := DiscoverVideos(dir)
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %v", videos)
	}
	if filepath.Base(videos[0]) != "a.mkv" || filepath.Base(videos[1]) != "b.mp4" {
		t.Errorf("expected sorted video list, got %v", videos)
	}
}

func TestViewShowsError(t *testing.T) {
	fp := New(nil, nil)
	fp.width = 80
	fp.SetError("Please select a valid video file")

	view := fp.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
}
