// Package i18n provides internationalization support for the rascal front-end.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangEnglish    Language = "en"
	LangChinese    Language = "zh"
	LangPortuguese Language = "pt"
)

var (
	currentLang Language
	once        sync.Once
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		currentLang = detectLanguage()
	})
}

// SetLanguage sets the current language manually.
func SetLanguage(lang Language) {
	Init()
	currentLang = lang
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	return currentLang
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	Init()

	var messages map[string]string
	switch currentLang {
	case LangChinese:
		messages = zhMessages
	case LangPortuguese:
		messages = ptMessages
	default:
		messages = enMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to English
		template, ok = enMessages[key]
		if !ok {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// ParseLanguage parses a language code such as "pt_BR.UTF-8", "zh-CN" or "en".
// ok is false for unsupported languages.
func ParseLanguage(code string) (lang Language, ok bool) {
	lang = parseLanguageCode(code)
	return lang, lang != ""
}

// detectLanguage detects the system language from the environment.
func detectLanguage() Language {
	for _, envVar := range []string{"RASCAL_LANG", "LC_ALL", "LANG", "LANGUAGE"} {
		if lang := os.Getenv(envVar); lang != "" {
			if detected := parseLanguageCode(lang); detected != "" {
				return detected
			}
		}
	}
	return LangEnglish
}

// parseLanguageCode parses a language code string and returns the Language.
func parseLanguageCode(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))

	// Handle formats like "zh_CN.UTF-8", "pt-BR", "en", etc.
	switch {
	case strings.HasPrefix(code, "zh"):
		return LangChinese
	case strings.HasPrefix(code, "pt"):
		return LangPortuguese
	case strings.HasPrefix(code, "en"):
		return LangEnglish
	}
	return ""
}
