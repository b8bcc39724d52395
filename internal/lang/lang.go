// internal/lang/lang.go
package lang

// Display names for contract generation languages. The native script is
// included so the generation model writes the contract in that script.
var names = map[string]string{
	"en": "English",
	"hi": "Hindi (हिन्दी)",
	"ta": "Tamil (தமிழ்)",
	"te": "Telugu (తెలుగు)",
	"kn": "Kannada (ಕನ್ನಡ)",
	"ml": "Malayalam (മലയാളം)",
	"mr": "Marathi (मराठी)",
	"gu": "Gujarati (ગુજરાતી)",
	"pa": "Punjabi (ਪੰਜਾਬੀ)",
	"bn": "Bengali (বাংলা)",
	"es": "Spanish (Español)",
	"fr": "French (Français)",
	"de": "German (Deutsch)",
	"zh": "Chinese (中文)",
	"ja": "Japanese (日本語)",
	"ko": "Korean (한국어)",
	"ar": "Arabic (العربية)",
	"ur": "Urdu (اردو)",
}

// Name returns the display name for a language code. Unknown codes pass
// through unchanged.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return code
}

// Supported lists the known language codes.
func Supported() []string {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	return codes
}
