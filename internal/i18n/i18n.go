// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides the translated labels for keycalc. It uses the
// go-i18n library to load embedded YAML message files.
//
// Only user interface labels are translated. Calculator display texts
// such as "Error" are state and never pass through here.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	locales   []string
)

// Init loads every embedded locale and selects lang. Unknown or malformed
// tags fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	locales = locales[:0]
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err == nil {
			locales = append(locales, strings.TrimSuffix(f.Name(), ".yaml"))
		}
	}
	sort.Strings(locales)

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	current = tag.String()
	localizer = i18n.NewLocalizer(bundle, current)
}

// T translates messageID. Extra args are applied with fmt.Sprintf. If the
// message is unknown the ID itself is returned.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language tag.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// GetAvailableLocales maps each embedded locale tag to its own-language name.
func GetAvailableLocales() map[string]string {
	if localizer == nil {
		Init("en")
	}
	out := make(map[string]string, len(locales))
	for _, l := range locales {
		tag := language.Make(l)
		out[l] = display.Self.Name(tag)
	}
	return out
}
