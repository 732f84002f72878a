// ABOUTME: Generic submit/track state machine shared by the three workflows
// ABOUTME: Owns phase transitions, validation, and the bounded result history

package workflow

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/medvista/mediastudio-cli/internal/debuglog"
	"github.com/medvista/mediastudio-cli/internal/language"
)

// Kind identifies one of the three generation workflows.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindVideoTranslation
)

// String returns the workflow name used in logs and JSON output.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindVideoTranslation:
		return "video-translation"
	default:
		return "unknown"
	}
}

// HistoryCap returns how many recent results the workflow keeps.
func (k Kind) HistoryCap() int {
	if k == KindImage {
		return 5
	}
	return 3
}

// Phase is the controller's state machine phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// Input carries the fields for one submission. Unused fields stay empty
// depending on the workflow kind.
type Input struct {
	Prompt         string
	TargetLanguage string
	Story          string
	FilePath       string
	FileName       string
}

// Result is one completed generation. Results are built only for successful
// responses and never mutated afterwards.
type Result struct {
	ID             string
	Prompt         string
	TargetLanguage string
	Story          string
	FileName       string
	MediaURL       string
}

// Outcome is what a submission call reports back to the controller.
type Outcome struct {
	MediaURL string
	Err      error
}

// Call performs the single network round trip for a submission. It is run
// off the update loop and its Outcome fed back through Resolve.
type Call func(ctx context.Context) Outcome

// SubmitFunc issues the workflow's backend operation and returns the media
// URL. The error, if any, must already be a display-ready message.
type SubmitFunc func(ctx context.Context, in Input) (string, error)

// Controller drives one workflow instance. It lives as long as its view;
// tearing the view down discards all state, history included.
type Controller struct {
	kind    Kind
	submit  SubmitFunc
	phase   Phase
	lastErr string
	pending Input
	current *Result
	history []Result
}

// New creates a controller for the given workflow kind.
func New(kind Kind, submit SubmitFunc) *Controller {
	return &Controller{kind: kind, submit: submit}
}

// Kind returns the workflow kind.
func (c *Controller) Kind() Kind { return c.kind }

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// LastError returns the validation or submission error to display, or "".
func (c *Controller) LastError() string { return c.lastErr }

// Current returns the most recent successful result, or nil.
func (c *Controller) Current() *Result { return c.current }

// History returns the bounded most-recent-first result list.
func (c *Controller) History() []Result { return c.history }

// Submit validates the input and, when accepted, moves to Submitting and
// returns the call to run. A false return means no network call may be made:
// either validation failed (lastErr is set, phase unchanged) or a submission
// is already in flight.
func (c *Controller) Submit(in Input) (Call, bool) {
	if c.phase == PhaseSubmitting {
		return nil, false
	}

	if msg := c.validate(in); msg != "" {
		c.lastErr = msg
		return nil, false
	}

	c.phase = PhaseSubmitting
	c.lastErr = ""
	c.pending = in

	submit := c.submit
	return func(ctx context.Context) Outcome {
		url, err := submit(ctx, in)
		return Outcome{MediaURL: url, Err: err}
	}, true
}

// Resolve applies a submission outcome. Outcomes arriving while not
// Submitting belong to a torn-down predecessor and are dropped.
func (c *Controller) Resolve(out Outcome) {
	if c.phase != PhaseSubmitting {
		debuglog.Warn("%s: dropping stale outcome", c.kind)
		return
	}

	if out.Err != nil {
		c.phase = PhaseFailed
		c.lastErr = out.Err.Error()
		return
	}

	res := Result{
		ID:             uuid.NewString(),
		Prompt:         c.pending.Prompt,
		TargetLanguage: c.pending.TargetLanguage,
		Story:          c.pending.Story,
		FileName:       c.pending.FileName,
		MediaURL:       out.MediaURL,
	}

	c.current = &res
	c.history = append([]Result{res}, c.history...)
	if cap := c.kind.HistoryCap(); len(c.history) > cap {
		c.history = c.history[:cap]
	}
	c.phase = PhaseSucceeded
	c.lastErr = ""
}

func (c *Controller) validate(in Input) string {
	switch c.kind {
	case KindImage:
		if strings.TrimSpace(in.Prompt) == "" {
			return "Please enter a prompt"
		}
	case KindVideo:
		if strings.TrimSpace(in.Prompt) == "" {
			return "Please enter a prompt"
		}
		if !language.Supported(language.Video, in.TargetLanguage) {
			return "Unsupported target language"
		}
	case KindVideoTranslation:
		if in.FilePath == "" {
			return "Please select a video file"
		}
		if !IsVideoFile(in.FilePath) {
			return "Please select a valid video file"
		}
		if !language.Supported(language.Translation, in.TargetLanguage) {
			return "Unsupported target language"
		}
	}
	return ""
}

// videoExtensions covers common containers the platform MIME table misses.
var videoExtensions = map[string]bool{
	".avi": true,
	".flv": true,
	".m4v": true,
	".mkv": true,
	".wmv": true,
}

// IsVideoFile reports whether the path looks like a video by MIME type.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if t := mime.TypeByExtension(ext); strings.HasPrefix(t, "video/") {
		return true
	}
	return videoExtensions[ext]
}
