// ABOUTME: Supported target languages for the generation workflows
// ABOUTME: Fixed code/name sets matching what the backend accepts

package language

// Language pairs an ISO-style language code with its display name.
type Language struct {
	Code string
	Name string
}

// Translation is the full set accepted by the video translation operation.
var Translation = []Language{
	{"af", "Afrikaans"},
	{"ar", "Arabic"},
	{"bn", "Bengali"},
	{"bs", "Bosnian"},
	{"ca", "Catalan"},
	{"cs", "Czech"},
	{"cy", "Welsh"},
	{"da", "Danish"},
	{"de", "German"},
	{"el", "Greek"},
	{"en", "English"},
	{"eo", "Esperanto"},
	{"es", "Spanish"},
	{"et", "Estonian"},
	{"fi", "Finnish"},
	{"fr", "French"},
	{"gu", "Gujarati"},
	{"hi", "Hindi"},
	{"hr", "Croatian"},
	{"hu", "Hungarian"},
	{"hy", "Armenian"},
	{"id", "Indonesian"},
	{"is", "Icelandic"},
	{"it", "Italian"},
	{"ja", "Japanese"},
	{"jw", "Javanese"},
	{"km", "Khmer"},
	{"kn", "Kannada"},
	{"ko", "Korean"},
	{"la", "Latin"},
	{"lv", "Latvian"},
	{"ml", "Malayalam"},
	{"mr", "Marathi"},
	{"my", "Myanmar (Burmese)"},
	{"ne", "Nepali"},
	{"nl", "Dutch"},
	{"no", "Norwegian"},
	{"pl", "Polish"},
	{"pt", "Portuguese"},
	{"ro", "Romanian"},
	{"ru", "Russian"},
	{"si", "Sinhala"},
	{"sk", "Slovak"},
	{"sq", "Albanian"},
	{"sr", "Serbian"},
	{"su", "Sundanese"},
	{"sv", "Swedish"},
	{"sw", "Swahili"},
	{"ta", "Tamil"},
	{"te", "Telugu"},
	{"th", "Thai"},
	{"tl", "Filipino"},
	{"tr", "Turkish"},
	{"uk", "Ukrainian"},
	{"ur", "Urdu"},
	{"vi", "Vietnamese"},
	{"zh-CN", "Chinese (Mandarin/China)"},
	{"zh-TW", "Chinese (Mandarin/Taiwan)"},
	{"zh", "Chinese (Mandarin)"},
}

// Video is the set accepted by the video generation operation. Narration is
// currently English-only on the backend.
var Video = []Language{
	{"en", "English"},
}

// Name returns the display name for a code, or the code itself when unknown.
func Name(set []Language, code string) string {
	for _, l := range set {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// Supported reports whether the code is part of the given set.
func Supported(set []Language, code string) bool {
	for _, l := range set {
		if l.Code == code {
			return true
		}
	}
	return false
}
