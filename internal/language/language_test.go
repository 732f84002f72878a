// ABOUTME: Unit tests for the supported language sets
// ABOUTME: Verifies lookups and the fixed code lists

package language

import "testing"

func TestName(t *testing.T) {
	if got := Name(Translation, "es"); got != "Spanish" {
		t.Errorf("Name(Translation, es) = %q, want Spanish", got)
	}
	if got := Name(Video, "en"); got != "English" {
		t.Errorf("Name(Video, en) = %q, want English", got)
	}
}

func TestNameFallsBackToCode(t *testing.T) {
	if got := Name(Translation, "xx"); got != "xx" {
		t.Errorf("Name(Translation, xx) = %q, want xx", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported(Translation, "ja") {
		t.Error("expected ja to be a supported translation language")
	}
	if Supported(Translation, "xx") {
		t.Error("expected xx to be unsupported")
	}
	if !Supported(Video, "en") {
		t.Error("expected en to be a supported video language")
	}
	if Supported(Video, "es") {
		t.Error("expected es to be unsupported for video")
	}
}

func TestTranslationSetSize(t *testing.T) {
	if len(Translation) != 59 {
		t.Errorf("expected 59 translation languages, got %d", len(Translation))
	}
	seen := make(map[string]bool)
	for _, l := range Translation {
		if l.Code == "" || l.Name == "" {
			t.Errorf("incomplete language entry: %+v", l)
		}
		if seen[l.Code] {
			t.Errorf("duplicate language code %q", l.Code)
		}
		seen[l.Code] = true
	}
}
