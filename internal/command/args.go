// Where: internal/command/args.go
// What: Argument preprocessing and the language argument mapper.
// Why: Support the two-letter -lv flag and case-insensitive language choices.
package command

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/dockerfile-generator/internal/domain/language"
)

const languageVersionFlag = "--language-version"

// valueFlags take their value from the following token when no "=" is used.
var valueFlags = map[string]struct{}{
	languageVersionFlag: {},
	"-lv":               {},
	"--flavor":          {},
	"-o":                {},
	"--output-file":     {},
	"--config":          {},
}

// normalizeArgs rewrites -lv into --language-version. Kong short flags are a
// single rune, so the two-letter form cannot be declared on the struct. A -lv
// token that is the value of a preceding flag is left alone.
func normalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	expectValue := false
	for i, arg := range args {
		if expectValue {
			normalized = append(normalized, arg)
			expectValue = false
			continue
		}
		if arg == "--" {
			normalized = append(normalized, args[i:]...)
			break
		}
		switch {
		case arg == "-lv":
			normalized = append(normalized, languageVersionFlag)
		case strings.HasPrefix(arg, "-lv="):
			normalized = append(normalized, languageVersionFlag+"="+strings.TrimPrefix(arg, "-lv="))
		default:
			normalized = append(normalized, arg)
		}
		_, expectValue = valueFlags[arg]
	}
	return normalized
}

// LanguageArg is a positional language argument decoded case-insensitively.
type LanguageArg language.Language

// Decode implements kong.MapperValue.
func (l *LanguageArg) Decode(ctx *kong.DecodeContext) error {
	var raw string
	if err := ctx.Scan.PopValueInto("language", &raw); err != nil {
		return err
	}
	lang, ok := language.Parse(raw)
	if !ok {
		return fmt.Errorf("invalid choice %q (choose from %s)", raw, strings.Join(language.Names(), ", "))
	}
	*l = LanguageArg(lang)
	return nil
}

// Language returns the decoded language.
func (l LanguageArg) Language() language.Language {
	return language.Language(l)
}
