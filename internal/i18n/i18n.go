// Copyright 2024-2025 logmngr authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package i18n provides localized strings for the logmngr CLI's
// user-facing output: the startup banner tagline, the summary line
// printed after a process run, and fatal error prefixes.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// SupportedLanguage represents a supported CLI display language.
type SupportedLanguage string

const (
	LanguageEnglish SupportedLanguage = "en"
	LanguageChinese SupportedLanguage = "zh"
)

// supportedTags and supportedLanguages are parallel slices: index i of
// one names the same language as index i of the other. languageMatcher
// resolves an arbitrary BCP-47 env-var tag to the closest of these.
var (
	supportedTags      = []language.Tag{language.English, language.Chinese}
	supportedLanguages = []SupportedLanguage{LanguageEnglish, LanguageChinese}
	languageMatcher    = language.NewMatcher(supportedTags)
)

// Localizer handles internationalization of CLI output.
type Localizer struct {
	language SupportedLanguage
	messages map[string]string
}

// NewLocalizer creates a new localizer with the specified language.
func NewLocalizer(lang SupportedLanguage) *Localizer {
	l := &Localizer{language: lang}
	l.loadMessages()
	return l
}

// NewLocalizerFromEnv creates a new localizer based on environment variables.
func NewLocalizerFromEnv() *Localizer {
	return NewLocalizer(detectLanguageFromEnv())
}

// T translates a message key with optional printf-style parameters.
func (l *Localizer) T(key string, params ...interface{}) string {
	if message, ok := l.messages[key]; ok {
		if len(params) > 0 {
			return fmt.Sprintf(message, params...)
		}
		return message
	}
	if l.language != LanguageEnglish {
		return NewLocalizer(LanguageEnglish).T(key, params...)
	}
	return key
}

// GetLanguage returns the current language.
func (l *Localizer) GetLanguage() SupportedLanguage {
	return l.language
}

// SetLanguage changes the current language.
func (l *Localizer) SetLanguage(lang SupportedLanguage) {
	l.language = lang
	l.loadMessages()
}

// detectLanguageFromEnv detects language from environment variables.
// LOGMNGR_LANG takes precedence over the POSIX LANG variable. Either
// value is parsed as a BCP-47 tag and resolved against the supported
// languages with language.Matcher, rather than a bare prefix check, so
// a POSIX locale like "zh_CN.UTF-8" or a regional tag like "zh-Hant-TW"
// both land on LanguageChinese.
func detectLanguageFromEnv() SupportedLanguage {
	value := os.Getenv("LOGMNGR_LANG")
	if value == "" {
		value = os.Getenv("LANG")
	}
	if value == "" {
		return LanguageEnglish
	}

	// Strip the POSIX codeset/modifier suffix ("zh_CN.UTF-8@foo" ->
	// "zh_CN") and swap the POSIX "_" territory separator for BCP-47's
	// "-" before parsing.
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")

	tag, err := language.Parse(value)
	if err != nil {
		return LanguageEnglish
	}

	_, index, _ := languageMatcher.Match(tag)
	return supportedLanguages[index]
}

func (l *Localizer) loadMessages() {
	switch l.language {
	case LanguageChinese:
		l.messages = chineseMessages
	default:
		l.messages = englishMessages
	}
}

// IsSupported checks if a language is supported.
func IsSupported(lang SupportedLanguage) bool {
	return lang == LanguageEnglish || lang == LanguageChinese
}

// GetSupportedLanguages returns all supported languages.
func GetSupportedLanguages() []SupportedLanguage {
	return []SupportedLanguage{LanguageEnglish, LanguageChinese}
}
