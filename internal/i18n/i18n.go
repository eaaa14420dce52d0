// Package i18n is a flat key/value string lookup with {{name}} placeholder
// substitution. English and Tamil locales are embedded; lookups fall back to
// English, and a key missing from both locales is echoed back so the caller
// never gets an empty string.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

// DefaultLocale is used when the requested locale is unknown.
const DefaultLocale = "en"

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

type Bundle struct {
	locales map[string]map[string]string
}

// Load parses every embedded locale file.
func Load() (*Bundle, error) {
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	b := &Bundle{locales: make(map[string]map[string]string, len(entries))}
	for _, de := range entries {
		name := de.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := localesFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, err
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("locale %s: %w", name, err)
		}
		b.locales[strings.TrimSuffix(name, ".json")] = table
	}
	if _, ok := b.locales[DefaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q missing", DefaultLocale)
	}
	return b, nil
}

// Locales lists the available locale codes.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for code := range b.locales {
		out = append(out, code)
	}
	return out
}

// Has reports whether the locale is available.
func (b *Bundle) Has(locale string) bool {
	_, ok := b.locales[locale]
	return ok
}

// T resolves key in the given locale, substituting {{name}} placeholders from
// vars. Missing keys fall back to English, then to the key itself.
func (b *Bundle) T(locale, key string, vars map[string]any) string {
	msg, ok := b.locales[locale][key]
	if !ok {
		msg, ok = b.locales[DefaultLocale][key]
	}
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return msg
	}
	return placeholderRe.ReplaceAllStringFunc(msg, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}
