// ABOUTME: Tests for the image and video generation commands
// ABOUTME: Verifies auth gating, validation, and output formats

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRunImageRequiresAuth(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	code := runImage(context.Background(), &buf, "a prompt")

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "not logged in") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunImageValidation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	storeToken(t, "tok-123")

	var buf bytes.Buffer
	code := runImage(context.Background(), &buf, "   ")

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Please enter a prompt") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunImageSuccess(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	storeToken(t, "tok-123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
			t.Errorf("unexpected auth header %q", auth)
		}
		w.Write([]byte(`{"image_url": "http://cdn.example.com/img.png"}`))
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runImage(context.Background(), &buf, "a stethoscope")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if strings.TrimSpace(buf.String()) != "http://cdn.example.com/img.png" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunImageJSONOutput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	storeToken(t, "tok-123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"image_url": "http://cdn.example.com/img.png"}`))
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	code := runImage(context.Background(), &buf, "a stethoscope")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	for _, want := range []string{`"workflow": "image"`, `"image_url": "http://cdn.example.com/img.png"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected output to contain %s, got %q", want, buf.String())
		}
	}
}

func TestRunImageBackendFailure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	storeToken(t, "tok-123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runImage(context.Background(), &buf, "a prompt")

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Failed to generate image. Please try again.") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunVideoSuccess(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	storeToken(t, "tok-123")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"video_url": "http://cdn.example.com/out.mp4"}`))
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runVideo(context.Background(), &buf, "hand washing steps", "en", "a nurse demonstrates")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if strings.TrimSpace(buf.String()) != "http://cdn.example.com/out.mp4" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRunVideoRejectsUnsupportedLanguage(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	storeToken(t, "tok-123")

	var buf bytes.Buffer
	code := runVideo(context.Background(), &buf, "a prompt", "xx", "")

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Unsupported target language") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
