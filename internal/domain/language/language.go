// Where: internal/domain/language/language.go
// What: Closed set of languages that have a build-file template.
// Why: Let callers switch over a typed value instead of building file names.
package language

import "strings"

// Language identifies a supported runtime.
type Language string

const (
	Python Language = "python"
	NodeJS Language = "nodejs"
)

var supported = []Language{Python, NodeJS}

// All returns the supported languages in display order.
func All() []Language {
	return append([]Language(nil), supported...)
}

// Names returns the supported language names in display order.
func Names() []string {
	names := make([]string, 0, len(supported))
	for _, lang := range supported {
		names = append(names, string(lang))
	}
	return names
}

// Parse normalizes name (trim + lowercase) and reports whether it is supported.
func Parse(name string) (Language, bool) {
	normalized := Language(strings.ToLower(strings.TrimSpace(name)))
	for _, lang := range supported {
		if lang == normalized {
			return lang, true
		}
	}
	return normalized, false
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// DisplayName is the upper-case label used in progress output.
func (l Language) DisplayName() string {
	return strings.ToUpper(string(l))
}
