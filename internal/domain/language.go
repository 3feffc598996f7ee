package domain

import (
	"strings"

	"gitlab.com/codefusion.net/internal/static/errs"
)

// languageIDs maps canonical language names to the judge's numeric
// language identifiers. The table is immutable after init, so lookups
// are safe without locking.
var languageIDs = map[string]int{
	"PYTHON":     71,
	"JAVASCRIPT": 63,
	"TYPESCRIPT": 74,
	"JAVA":       62,
	"CPP":        54,
	"GO":         60,
}

var languageNames = func() map[int]string {
	m := make(map[int]string, len(languageIDs))
	for name, id := range languageIDs {
		m[id] = name
	}
	return m
}()

// ResolveLanguageID returns the judge language id for a canonical
// language name. Names are matched case-insensitively.
func ResolveLanguageID(name string) (int, error) {
	id, ok := languageIDs[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, errs.UnsupportedLanguage
	}
	return id, nil
}

// ResolveLanguageName returns the canonical name for a judge language id.
func ResolveLanguageName(id int) (string, error) {
	name, ok := languageNames[id]
	if !ok {
		return "", errs.UnsupportedLanguage
	}
	return name, nil
}

// SupportedLanguages lists the canonical language names the registry knows.
func SupportedLanguages() []string {
	names := make([]string, 0, len(languageIDs))
	for name := range languageIDs {
		names = append(names, name)
	}
	return names
}
