package krishi

// Locale is a BCP-47-ish language code selected by the user.
type Locale string

// Supported locales.
const (
	LocaleEnglish   Locale = "en"
	LocaleHindi     Locale = "hi"
	LocaleMarathi   Locale = "mr"
	LocaleTamil     Locale = "ta"
	LocaleTelugu    Locale = "te"
	LocaleKannada   Locale = "kn"
	LocaleBengali   Locale = "bn"
	LocaleGujarati  Locale = "gu"
	LocalePunjabi   Locale = "pa"
	LocaleMalayalam Locale = "ml"
)

// DefaultVoice is used when a locale has no dedicated voice mapping.
const DefaultVoice = "Zephyr"

// languageNames maps locales to the human-readable names used in prompts.
var languageNames = map[Locale]string{
	LocaleEnglish:   "English",
	LocaleHindi:     "Hindi",
	LocaleMarathi:   "Marathi",
	LocaleTamil:     "Tamil",
	LocaleTelugu:    "Telugu",
	LocaleKannada:   "Kannada",
	LocaleBengali:   "Bengali",
	LocaleGujarati:  "Gujarati",
	LocalePunjabi:   "Punjabi",
	LocaleMalayalam: "Malayalam",
}

// voiceMap pins a prebuilt voice per locale for speech synthesis and live
// conversations.
var voiceMap = map[Locale]string{
	LocaleEnglish:   "Zephyr",
	LocaleHindi:     "Kore",
	LocaleMarathi:   "Puck",
	LocaleTamil:     "Charon",
	LocaleTelugu:    "Fenrir",
	LocaleKannada:   "Leda",
	LocaleBengali:   "Orus",
	LocaleGujarati:  "Aoede",
	LocalePunjabi:   "Callirrhoe",
	LocaleMalayalam: "Autonoe",
}

// LanguageName resolves the prompt-facing language name for a locale.
// Unknown locales fall back to English.
func LanguageName(locale Locale) string {
	if name, ok := languageNames[locale]; ok {
		return name
	}
	return "English"
}

// VoiceFor resolves the synthesis voice for a locale, falling back to
// DefaultVoice.
func VoiceFor(locale Locale) string {
	if voice, ok := voiceMap[locale]; ok {
		return voice
	}
	return DefaultVoice
}
