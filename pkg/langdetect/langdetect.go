// Package langdetect identifies the language of analyzed text.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// sampleLimit caps how much text is handed to lingua. Detection quality
// plateaus quickly and the models are expensive, so a prefix is enough.
const sampleLimit = 4096

// Detector wraps a lingua detector built over a fixed set of languages.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector. Construction loads the language models and is
// expensive, so callers should build one and reuse it.
func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Spanish,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code of the detected language
// ("en", "de", ...) and whether detection was confident enough to report.
func (d *Detector) Detect(sample string) (string, bool) {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return "", false
	}
	if len(sample) > sampleLimit {
		sample = sample[:sampleLimit]
	}

	language, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
