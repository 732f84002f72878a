// ABOUTME: Tests for the login screen model
// ABOUTME: Validates error handling, cancel, and the frozen submitting state

package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew(t *testing.T) {
	l := New()

	if l.Submitting() {
		t.Error("expected new screen to not be submitting")
	}
	if l.form == nil {
		t.Fatal("expected a form")
	}
}

func TestEscCancels(t *testing.T) {
	l := New()

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a cancel command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestEscIgnoredWhileSubmitting(t *testing.T) {
	l := New()
	l.submitting = true

	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		if _, ok := cmd().(CancelledMsg); ok {
			t.Error("expected esc to be ignored while submitting")
		}
	}
}

func TestSetErrorKeepsUsername(t *testing.T) {
	l := New()
	l.username = "clinician"
	l.password = "wrong"
	l.submitting = true

	l.SetError("Login failed. Please check your credentials.")

	if l.Submitting() {
		t.Error("expected submitting cleared")
	}
	if l.username != "clinician" {
		t.Errorf("expected username kept, got %q", l.username)
	}
	if l.password != "" {
		t.Error("expected password cleared")
	}
	if !strings.Contains(l.View(), "Login failed. Please check your credentials.") {
		t.Error("expected view to show the error")
	}
}

func TestViewWhileSubmitting(t *testing.T) {
	l := New()
	l.submitting = true

	view := l.View()
	if !strings.Contains(view, "Signing in...") {
		t.Errorf("expected submitting view, got %q", view)
	}
}
