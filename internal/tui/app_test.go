// ABOUTME: Integration tests for the TUI root model
// ABOUTME: Tests routing, the auth guard, and screen teardown

package tui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/medvista/mediastudio-cli/internal/client"
	"github.com/medvista/mediastudio-cli/internal/session"
	"github.com/medvista/mediastudio-cli/internal/tui/dashboard"
	"github.com/medvista/mediastudio-cli/internal/tui/generate"
	"github.com/medvista/mediastudio-cli/internal/tui/login"
	"github.com/medvista/mediastudio-cli/internal/workflow"
)

func newSession(t *testing.T, token string) *session.Store {
	t.Helper()
	dir := t.TempDir()
	if token != "" {
		data := `{"access_token": "` + token + `"}`
		if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte(data), 0600); err != nil {
			t.Fatal(err)
		}
	}
	s := session.New(dir)
	s.Restore()
	return s
}

func newApp(t *testing.T, token string) *App {
	t.Helper()
	return New(client.New("http://localhost:0"), newSession(t, token), t.TempDir())
}

func TestStartsAtLoginWhenUnauthenticated(t *testing.T) {
	a := newApp(t, "")

	if a.screen != ScreenLogin {
		t.Errorf("expected login screen, got %d", a.screen)
	}
	if a.loginScreen == nil {
		t.Error("expected login model to exist")
	}
}

func TestStartsAtDashboardWhenAuthenticated(t *testing.T) {
	a := newApp(t, "tok-123")

	if a.screen != ScreenDashboard {
		t.Errorf("expected dashboard screen, got %d", a.screen)
	}
	if a.dash == nil {
		t.Error("expected dashboard model to exist")
	}
}

func TestGuardRedirectsToLogin(t *testing.T) {
	a := newApp(t, "")

	a.navigate(ScreenImage)

	if a.screen != ScreenLogin {
		t.Errorf("expected redirect to login, got %d", a.screen)
	}
	if a.imageScreen != nil {
		t.Error("expected no image screen for unauthenticated session")
	}
}

func TestDashboardSelectionOpensWorkflow(t *testing.T) {
	a := newApp(t, "tok-123")

	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceImage})

	if a.screen != ScreenImage {
		t.Errorf("expected image screen, got %d", a.screen)
	}
	if a.imageScreen == nil {
		t.Fatal("expected image model to exist")
	}
	if a.dash != nil {
		t.Error("expected dashboard model to be torn down")
	}
}

func TestLogoutClearsSessionAndRoutesToLogin(t *testing.T) {
	a := newApp(t, "tok-123")

	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceLogout})

	if a.screen != ScreenLogin {
		t.Errorf("expected login screen, got %d", a.screen)
	}
	if a.session.IsAuthenticated() {
		t.Error("expected session cleared")
	}
}

func TestLoginSuccessNavigatesToDashboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "tok-123", "token_type": "bearer"}`))
	}))
	defer server.Close()

	sess := newSession(t, "")
	a := New(client.New(server.URL), sess, t.TempDir())

	_, cmd := a.Update(login.SubmittedMsg{Username: "clinician", Password: "secret"})
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	a.Update(cmd())

	if a.screen != ScreenDashboard {
		t.Errorf("expected dashboard after login, got %d", a.screen)
	}
	if !sess.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Incorrect username or password"}`))
	}))
	defer server.Close()

	a := New(client.New(server.URL), newSession(t, ""), t.TempDir())

	_, cmd := a.Update(login.SubmittedMsg{Username: "clinician", Password: "wrong"})
	a.Update(cmd())

	if a.screen != ScreenLogin {
		t.Errorf("expected to stay on login, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "Incorrect username or password") {
		t.Error("expected failure message in view")
	}
}

func TestCancelFromWorkflowReturnsToDashboard(t *testing.T) {
	a := newApp(t, "tok-123")
	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceVideo})

	a.Update(generate.CancelledMsg{})

	if a.screen != ScreenDashboard {
		t.Errorf("expected dashboard, got %d", a.screen)
	}
	if a.videoScreen != nil {
		t.Error("expected video model to be torn down")
	}
}

func TestNavigationDiscardsWorkflowState(t *testing.T) {
	a := newApp(t, "tok-123")

	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceImage})
	first := a.imageScreen
	a.Update(generate.CancelledMsg{})
	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceImage})

	if a.imageScreen == first {
		t.Error("expected a fresh image model after re-entry")
	}
	if len(a.imageScreen.Controller().History()) != 0 {
		t.Error("expected empty history on a fresh screen")
	}
}

func TestAbandonedSubmissionDoesNotResolveNextScreen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"image_url": "http://cdn.example.com/stale.png"}`))
	}))
	defer server.Close()

	a := New(client.New(server.URL), newSession(t, "tok-123"), t.TempDir())

	// Submit on the image screen, leave mid-flight without running the call.
	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceImage})
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	_, staleCmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if staleCmd == nil {
		t.Fatal("expected a submission command")
	}
	a.Update(generate.CancelledMsg{})

	// Start a fresh video submission that stays in flight.
	a.Update(dashboard.SelectedMsg{Choice: dashboard.ChoiceVideo})
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	// The abandoned call finally completes; its messages reach the active
	// screen and must be ignored there.
	deliver(t, a, staleCmd)

	ctrl := a.videoScreen.Controller()
	if ctrl.Phase() != workflow.PhaseSubmitting {
		t.Errorf("expected video workflow still Submitting, got %v", ctrl.Phase())
	}
	if ctrl.Current() != nil {
		t.Errorf("expected no video result, got %+v", ctrl.Current())
	}
}

// deliver runs a possibly batched command and feeds every produced message
// back into the app, without following the resulting commands.
func deliver(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		a.Update(msg)
	}
}

func TestCtrlCQuits(t *testing.T) {
	a := newApp(t, "tok-123")

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestHeaderShowsSessionState(t *testing.T) {
	a := newApp(t, "tok-123")
	a.width = 100

	if !strings.Contains(a.renderHeader(), "signed in") {
		t.Error("expected header to show signed in state")
	}

	b := newApp(t, "")
	b.width = 100
	if strings.Contains(b.renderHeader(), "signed in") {
		t.Error("expected no session marker when unauthenticated")
	}
}

func TestViewWrapsContentWithFrame(t *testing.T) {
	a := newApp(t, "tok-123")
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := a.View()
	if !strings.Contains(view, "Healthcare Media Studio") {
		t.Error("expected app title in frame")
	}
	if !strings.Contains(view, "╭─") || !strings.Contains(view, "╰─") {
		t.Error("expected frame borders")
	}
}
