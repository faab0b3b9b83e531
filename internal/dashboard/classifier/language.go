package classifier

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// DefaultLanguage is returned whenever detection fails.
const DefaultLanguage = LanguageEnglish

// LanguageDetector returns an ISO 639-1 code for text.
type LanguageDetector interface {
	Detect(text string) string
}

// WhatlangDetector detects languages with trigram and script analysis.
type WhatlangDetector struct{}

func NewWhatlangDetector() *WhatlangDetector {
	return &WhatlangDetector{}
}

func (d *WhatlangDetector) Detect(text string) string {
	return DetectLanguage(text)
}

// DetectLanguage never fails; undetectable text is reported as DefaultLanguage.
// All Chinese variants collapse to "zh".
func DetectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return DefaultLanguage
	}

	info := whatlanggo.Detect(text)
	if info.Lang < 0 {
		return DefaultLanguage
	}
	if info.Lang == whatlanggo.Cmn {
		return LanguageChinese
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return DefaultLanguage
	}
	return code
}
