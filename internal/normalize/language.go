package normalize

import (
	"strings"
	"unicode"

	"github.com/RadhiFadlillah/whatlanggo"
)

// Language is the canonical course language code. The closed set uses full
// lowercase English names; ISO tags from page metadata are mapped onto it.
type Language string

const (
	English Language = "english"
	French  Language = "french"
	Arabic  Language = "arabic"
	Spanish Language = "spanish"
	German  Language = "german"
)

// languageTokens maps tokens found in page copy, in any of the catalog
// languages, to the canonical code. Keys are lowercase.
var languageTokens = map[string]Language{
	"english":  English,
	"anglais":  English,
	"en":       English,
	"french":   French,
	"français": French,
	"francais": French,
	"fr":       French,
	"arabic":   Arabic,
	"arabe":    Arabic,
	"العربية":  Arabic,
	"ar":       Arabic,
	"spanish":  Spanish,
	"español":  Spanish,
	"espagnol": Spanish,
	"es":       Spanish,
	"german":   German,
	"deutsch":  German,
	"allemand": German,
	"de":       German,
}

// iso3Languages maps whatlanggo ISO 639-3 codes onto the canonical set.
var iso3Languages = map[string]Language{
	"eng": English,
	"fra": French,
	"arb": Arabic,
	"spa": Spanish,
	"deu": German,
}

// MapLanguageTokens scans explicitly declared language text such as
// "Anglais, Français" or "Subtitles: English, Arabic" and returns the
// canonical codes in order of first appearance, without duplicates. Unknown
// tokens are ignored, never guessed.
func MapLanguageTokens(text string) []Language {
	if text == "" {
		return nil
	}
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var langs []Language
	seen := make(map[Language]bool)
	for _, tok := range tokens {
		lang, ok := languageTokens[tok]
		if !ok || seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	return langs
}

// DetectLanguage runs statistical detection over free text (typically the
// course brief) and maps the top-ranked language onto the canonical set.
// Languages outside the set, unreliable guesses, and short inputs all yield
// nil rather than an invented code.
func DetectLanguage(text string) []Language {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return nil
	}
	if lang, ok := iso3Languages[whatlanggo.LangToString(info.Lang)]; ok {
		return []Language{lang}
	}
	return nil
}
